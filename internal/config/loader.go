package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/runner.yaml -> ./configs/runner.yaml -> embedded default.
// A custom path must exist and be valid; the other locations are skipped when
// missing or broken.
func Load(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs the
// keys it changes, and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports configuration that the runner cannot play with.
func (c RunnerConfig) Validate() error {
	var errs []error

	check := func(name string, r RangeConfig) {
		if r.Min > r.Max {
			errs = append(errs, fmt.Errorf("settings.%s: min %d > max %d", name, r.Min, r.Max))
		}
		if r.Step <= 0 {
			errs = append(errs, fmt.Errorf("settings.%s: step must be positive", name))
		}
	}
	check("speed", c.Settings.Speed)
	check("gravity", c.Settings.Gravity)
	check("obstacle_interval", c.Settings.ObstacleInterval)

	if c.Settings.ObstacleInterval.Min <= 0 {
		errs = append(errs, errors.New("settings.obstacle_interval: min must be positive"))
	}
	if len(c.Obstacles.Variants) == 0 {
		errs = append(errs, errors.New("obstacles.variants: at least one variant required"))
	}
	if len(c.Background.Palette) == 0 {
		errs = append(errs, errors.New("background.palette: at least one colour required"))
	}
	if c.Scoring.FramesPerTick <= 0 || c.Scoring.BackgroundEvery <= 0 {
		errs = append(errs, errors.New("scoring: frames_per_tick and background_every must be positive"))
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		errs = append(errs, fmt.Errorf("world.ground_y %v outside stage height %v", c.World.GroundY, c.World.Height))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, errors.New("audio.sample_rate: must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [0, 1]", c.Audio.Volume))
	}

	return errors.Join(errs...)
}

// UserDir returns ~/.runner, or empty if the home directory is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
