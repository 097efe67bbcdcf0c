package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/config"
	"github.com/lumen3d/engine/internal/core/ecs"
	"github.com/lumen3d/engine/internal/core/event"
	coresys "github.com/lumen3d/engine/internal/core/system"
	"github.com/lumen3d/engine/internal/data"
	"github.com/lumen3d/engine/internal/persist"
	"github.com/lumen3d/engine/internal/scene"
	"github.com/lumen3d/engine/internal/scripting"
	"github.com/lumen3d/engine/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/lumen.toml"
	if p := os.Getenv("LUMEN_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	world := ecs.NewWorld()

	// Prefabs and boot spawns
	if cfg.Scene.PrefabPath != "" {
		prefabs, err := data.LoadPrefabs(cfg.Scene.PrefabPath)
		if err != nil {
			return fmt.Errorf("prefabs: %w", err)
		}
		log.Info("prefabs loaded", zap.Int("count", prefabs.Count()))
		for _, name := range cfg.Scene.Spawn {
			if _, err := prefabs.Spawn(world, name, ecs.ID(name)); err != nil {
				return fmt.Errorf("spawn %s: %w", name, err)
			}
		}
	}

	// Postgres snapshot store
	var repo *persist.SnapshotRepo
	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			cancel()
			return fmt.Errorf("migrations: %w", err)
		}
		repo = persist.NewSnapshotRepo(db, persist.DefaultRegistry())
		if cfg.Database.RestoreOnBoot {
			n, err := repo.LoadLatest(ctx, world)
			if err != nil {
				cancel()
				return fmt.Errorf("restore snapshot: %w", err)
			}
			log.Info("snapshot restored", zap.Int("entities", n))
		}
		cancel()
	}

	sc := buildScene(world, float32(cfg.Scene.Ambient))
	log.Info("scene ready",
		zap.Int("lights", len(sc.Lights())),
		zap.Float32("ambient", sc.Ambient()))

	// Lua scripting
	var scriptEng *scripting.Engine
	if cfg.Scripting.Dir != "" {
		scriptEng, err = scripting.NewEngine(world, cfg.Scripting.Dir, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer scriptEng.Close()
	}

	queue := event.NewQueue()
	runner := coresys.NewRunner(log)
	runner.Register(system.NewDispatchSystem(queue, world, log))
	if scriptEng != nil {
		runner.Register(system.NewScriptSystem(scriptEng, log))
	}
	runner.Register(system.NewRenderScanSystem(world, &logSink{log: log}, log))
	if repo != nil {
		runner.Register(system.NewSnapshotSystem(repo, world, cfg.Database.SnapshotInterval, log))
	}

	log.Info("engine ready",
		zap.Int("entities", world.Len()),
		zap.Duration("tick_rate", cfg.Engine.TickRate))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Engine.TickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			queue.Push(event.Tick{Delta: dt})
			runner.Tick(dt)

		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			// One last tick so handlers see the close before teardown.
			queue.Push(event.CloseRequested{})
			runner.Tick(time.Since(last))
			if repo != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				if _, err := repo.Save(ctx, world); err != nil {
					log.Error("final snapshot failed", zap.Error(err))
				}
				cancel()
			}
			log.Info("engine stopped")
			return nil
		}
	}
}

// buildScene picks the first camera among spawned entities (falling
// back to a default) and gathers all lights.
func buildScene(world *ecs.World, ambient float32) *scene.Scene {
	var cam *component.Camera
	var lights []*component.Light
	for _, e := range world.Entities() {
		if cam == nil {
			if cams := ecs.ComponentsOf[*component.Camera](e, component.CategoryCamera); len(cams) > 0 {
				cam = cams[0]
			}
		}
		lights = append(lights, ecs.ComponentsOf[*component.Light](e, component.CategoryLight)...)
	}
	if cam == nil {
		cam = component.NewCamera([3]float32{0, 0, 5}, [3]float32{0, 0, 0}, 60)
	}
	s := scene.New(world, cam, nil, ambient)
	for _, l := range lights {
		if err := s.AddLight(l); err != nil {
			break
		}
	}
	return s
}

// logSink is a stand-in presenter: it reports batch-size changes and
// drops the geometry. A real renderer implements system.FrameSink and
// uploads the meshes instead.
type logSink struct {
	log    *zap.Logger
	meshes int
}

func (s *logSink) SubmitFrame(frame []system.MeshInstance) {
	if len(frame) != s.meshes {
		s.meshes = len(frame)
		s.log.Debug("frame batch size changed", zap.Int("meshes", len(frame)))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
