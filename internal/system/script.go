package system

import (
	"time"

	coresys "github.com/lumen3d/engine/internal/core/system"
	"github.com/lumen3d/engine/internal/scripting"
	"go.uber.org/zap"
)

// ScriptSystem invokes the Lua on_tick hook once per tick.
type ScriptSystem struct {
	engine *scripting.Engine
	log    *zap.Logger
}

func NewScriptSystem(engine *scripting.Engine, log *zap.Logger) *ScriptSystem {
	return &ScriptSystem{engine: engine, log: log}
}

func (s *ScriptSystem) Name() string         { return "script" }
func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ScriptSystem) Update(dt time.Duration) {
	if err := s.engine.OnTick(dt); err != nil {
		s.log.Error("script tick failed", zap.Error(err))
	}
}
