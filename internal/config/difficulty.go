package config

import "math"

// DifficultyManager derives the effective run parameters from progress
// through a run.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "frames":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scroll speed for the given base speed. With progression
// disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(base int, score int, frames int) float64 {
	if !d.IsEnabled() {
		return float64(base)
	}
	level := d.Level(score, frames)
	return float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the spawn interval in ms, never below floor.
func (d *DifficultyManager) Interval(base int, floor int, score int, frames int) int {
	if !d.IsEnabled() {
		return base
	}
	level := d.Level(score, frames)
	result := base - int(level*float64(d.cfg.Scaling.IntervalReduction))
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
