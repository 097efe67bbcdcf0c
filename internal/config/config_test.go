package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	content := `
[engine]
tick_rate = "50ms"

[logging]
level = "debug"
format = "json"

[database]
enabled = true
snapshot_interval = "1m"

[scene]
prefab_path = "assets/prefabs.yaml"
spawn = ["triangle"]
ambient = 0.3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Engine.TickRate != 50*time.Millisecond {
		t.Errorf("tick_rate = %v", cfg.Engine.TickRate)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if !cfg.Database.Enabled || cfg.Database.SnapshotInterval != time.Minute {
		t.Errorf("database = %+v", cfg.Database)
	}
	// Untouched keys keep their defaults.
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("max_open_conns default lost: %d", cfg.Database.MaxOpenConns)
	}
	if len(cfg.Scene.Spawn) != 1 || cfg.Scene.Spawn[0] != "triangle" {
		t.Errorf("scene spawn = %v", cfg.Scene.Spawn)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
