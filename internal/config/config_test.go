package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig() diverged:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("settings:\n  speed:\n    default: 9\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Settings.Speed.Default != 9 {
		t.Errorf("speed default = %d, expected 9", cfg.Settings.Speed.Default)
	}
	// Untouched keys keep their defaults
	if cfg.Settings.Speed.Max != 20 || cfg.Settings.Gravity.Default != 1000 {
		t.Errorf("defaults lost: %+v", cfg.Settings)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"inverted range", "settings:\n  speed:\n    min: 30\n", "settings.speed"},
		{"empty palette", "background:\n  palette: []\n", "background.palette"},
		{"no variants", "obstacles:\n  variants: []\n", "obstacles.variants"},
		{"zero step", "settings:\n  gravity:\n    step: 0\n", "step must be positive"},
		{"bad yaml", "settings: [", "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("world:\n  ground_y: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.GroundY != 250 {
		t.Errorf("ground_y = %v, expected 250", cfg.World.GroundY)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("marshalled config does not parse back to the same value")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, ParsePreset("nonsense"))
	if !reflect.DeepEqual(before, cfg) {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("defaults should ship with progression off")
	}
	if got := d.Speed(5, 50000, 0); got != 5 {
		t.Errorf("Speed() = %v, expected base 5", got)
	}
	if got := d.Interval(1000, 200, 50000, 0); got != 1000 {
		t.Errorf("Interval() = %v, expected base 1000", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 400},
	})

	tests := []struct {
		score        int
		wantSpeed    float64
		wantInterval int
	}{
		{0, 5, 1000},
		{500, 7.5, 800},
		{1000, 10, 600},
		{5000, 10, 600}, // clamped at max
	}
	for _, tc := range tests {
		if got := d.Speed(5, tc.score, 0); got != tc.wantSpeed {
			t.Errorf("Speed(score=%d) = %v, expected %v", tc.score, got, tc.wantSpeed)
		}
		if got := d.Interval(1000, 200, tc.score, 0); got != tc.wantInterval {
			t.Errorf("Interval(score=%d) = %v, expected %v", tc.score, got, tc.wantInterval)
		}
	}

	// The floor wins over large reductions
	if got := d.Interval(300, 200, 1000, 0); got != 200 {
		t.Errorf("Interval floor = %d, expected 200", got)
	}
}
