// Package config provides YAML-based configuration for the runner: settings
// ranges, stage geometry, obstacle variants, background palette and the
// optional difficulty progression.
package config

// RunnerConfig contains all tunables of the runner.
type RunnerConfig struct {
	Settings   SettingsConfig   `yaml:"settings"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Background BackgroundConfig `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// SettingsConfig holds the three user-editable settings.
type SettingsConfig struct {
	Speed            RangeConfig `yaml:"speed"`             // pixels per frame
	Gravity          RangeConfig `yaml:"gravity"`           // pixels per second squared
	ObstacleInterval RangeConfig `yaml:"obstacle_interval"` // milliseconds between spawns
}

// RangeConfig describes a clamped integer setting edited in fixed steps.
type RangeConfig struct {
	Default int `yaml:"default"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"`
}

// WorldConfig defines the virtual stage in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // y of the ground surface
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"` // bottom edge at creation
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative = up, pixels per second
	HitboxInset  float64 `yaml:"hitbox_inset"`
}

// ObstaclesConfig defines where obstacles appear and what they look like.
type ObstaclesConfig struct {
	SpawnX   float64         `yaml:"spawn_x"`
	SpawnY   float64         `yaml:"spawn_y"` // bottom edge of a spawned obstacle
	Variants []VariantConfig `yaml:"variants"`
}

// VariantConfig is the size of one obstacle variant. Variant ids are 1-based
// positions in ObstaclesConfig.Variants.
type VariantConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig defines the frame-driven score tick.
type ScoringConfig struct {
	FramesPerTick   int `yaml:"frames_per_tick"`
	PointsPerTick   int `yaml:"points_per_tick"`
	BackgroundEvery int `yaml:"background_every"` // score step that repaints the background
}

// BackgroundConfig lists the colours cycled as the score grows.
type BackgroundConfig struct {
	Palette []string `yaml:"palette"`
}

// AudioConfig controls the generated sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // master volume, 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
	JumpVolume float64 `yaml:"jump_volume"`
	HitVolume  float64 `yaml:"hit_volume"`
}

// DifficultyConfig defines the optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "frames", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to speed factor at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // ms removed from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" (use config as is).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
