package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hoshinonyaruko/snake-sim/snake"
)

func TestDefaults_MatchSimulationDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if got, want := cfg.Settings(), snake.DefaultSettings(); got != want {
		t.Fatalf("settings=%+v want=%+v", got, want)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"rotation_lock": 9, "port": "1234"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Defaults()
	if err := loadConfig(path, cfg); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.RotationLock != 9 || cfg.Port != "1234" {
		t.Fatalf("rotation_lock=%d port=%s", cfg.RotationLock, cfg.Port)
	}
	if cfg.InitialSize != snake.DefaultSettings().InitialSize {
		t.Fatalf("initial_size=%d lost its default", cfg.InitialSize)
	}
}

func TestValidate_RejectsBadPartition(t *testing.T) {
	cfg := Defaults()
	cfg.HazardSlice = 80
	cfg.HealingSlice = 30
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate accepted slices wider than drop_roll")
	}

	cfg = Defaults()
	cfg.FieldWidth = 10
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate accepted a field narrower than two cells")
	}
}

func TestReload_KeepsOldConfigOnError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(good, []byte(`{"initial_health": 7}`), 0644)
	os.WriteFile(bad, []byte(`{"initial_health": `), 0644)

	if err := Reload(good); err != nil {
		t.Fatalf("Reload(good): %v", err)
	}
	if err := Reload(bad); err == nil {
		t.Fatalf("Reload(bad) returned nil")
	}
	if got := Current().InitialHealth; got != 7 {
		t.Fatalf("initial_health=%d want=7", got)
	}
	if got := GetConfigValue("tick_rate").(int); got != 30 {
		t.Fatalf("tick_rate=%d want=30", got)
	}
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := saveConfig(path, Defaults()); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *AppConfig, 4)
	stop, err := WatchConfig(path, func(c *AppConfig) { changed <- c })
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer stop()

	cfg := Defaults()
	cfg.RotationLock = 11
	if err := saveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.RotationLock == 11 {
				return
			}
		case <-deadline:
			t.Fatalf("no reload observed")
		}
	}
}
