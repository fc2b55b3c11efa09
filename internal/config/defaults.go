package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Settings: SettingsConfig{
			Speed:            RangeConfig{Default: 5, Min: 1, Max: 20, Step: 1},
			Gravity:          RangeConfig{Default: 1000, Min: 200, Max: 3000, Step: 50},
			ObstacleInterval: RangeConfig{Default: 1000, Min: 200, Max: 5000, Step: 100},
		},
		World: WorldConfig{
			Width:   800,
			Height:  320,
			GroundY: 300,
		},
		Player: PlayerConfig{
			X:            200,
			Y:            200,
			Width:        44,
			Height:       92,
			JumpVelocity: -1600,
			HitboxInset:  4,
		},
		Obstacles: ObstaclesConfig{
			SpawnX: 750,
			SpawnY: 300,
			Variants: []VariantConfig{
				{Width: 34, Height: 70},
				{Width: 68, Height: 70},
				{Width: 102, Height: 70},
				{Width: 50, Height: 96},
				{Width: 100, Height: 96},
				{Width: 150, Height: 96},
			},
		},
		Scoring: ScoringConfig{
			FramesPerTick:   100,
			PointsPerTick:   100,
			BackgroundEvery: 1000,
		},
		Background: BackgroundConfig{
			Palette: []string{"#AEE7FF", "#FFDFAE", "#C9FFE0", "#FFE0F5", "#EAEAEA"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 400,
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
			JumpVolume: 0.5,
			HitVolume:  0.8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
