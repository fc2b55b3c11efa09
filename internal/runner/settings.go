package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Settings are the user-editable run parameters.
type Settings struct {
	Speed            int // pixels per frame
	Gravity          int // pixels per second squared
	ObstacleInterval int // milliseconds between spawns
}

// Field identifies one editable setting.
type Field int

const (
	FieldSpeed Field = iota
	FieldGravity
	FieldObstacleInterval
)

func (f Field) String() string {
	switch f {
	case FieldSpeed:
		return "speed"
	case FieldGravity:
		return "gravity"
	case FieldObstacleInterval:
		return "obstacle_interval"
	default:
		return "unknown"
	}
}

// Limits holds the clamp range and step of every field.
type Limits struct {
	Speed            config.RangeConfig
	Gravity          config.RangeConfig
	ObstacleInterval config.RangeConfig
}

// LimitsFromConfig extracts the limits from the settings config.
func LimitsFromConfig(c config.SettingsConfig) Limits {
	return Limits{
		Speed:            c.Speed,
		Gravity:          c.Gravity,
		ObstacleInterval: c.ObstacleInterval,
	}
}

// Range returns the limits of a single field.
func (l Limits) Range(f Field) config.RangeConfig {
	switch f {
	case FieldGravity:
		return l.Gravity
	case FieldObstacleInterval:
		return l.ObstacleInterval
	default:
		return l.Speed
	}
}

// Defaults returns the configured default settings, clamped.
func (l Limits) Defaults() Settings {
	return Settings{
		Speed:            l.Speed.Default,
		Gravity:          l.Gravity.Default,
		ObstacleInterval: l.ObstacleInterval.Default,
	}.Clamp(l)
}

// Clamp forces every field into its range.
func (s Settings) Clamp(l Limits) Settings {
	return Settings{
		Speed:            core.Clamp(s.Speed, l.Speed.Min, l.Speed.Max),
		Gravity:          core.Clamp(s.Gravity, l.Gravity.Min, l.Gravity.Max),
		ObstacleInterval: core.Clamp(s.ObstacleInterval, l.ObstacleInterval.Min, l.ObstacleInterval.Max),
	}
}

// Get returns the value of a field.
func (s Settings) Get(f Field) int {
	switch f {
	case FieldGravity:
		return s.Gravity
	case FieldObstacleInterval:
		return s.ObstacleInterval
	default:
		return s.Speed
	}
}

// Set assigns a field, clamped to its range.
func (s *Settings) Set(f Field, v int, l Limits) {
	r := l.Range(f)
	v = core.Clamp(v, r.Min, r.Max)
	switch f {
	case FieldGravity:
		s.Gravity = v
	case FieldObstacleInterval:
		s.ObstacleInterval = v
	default:
		s.Speed = v
	}
}

// Adjust moves a field by steps (negative = down) in its configured step size.
func (s *Settings) Adjust(f Field, steps int, l Limits) {
	s.Set(f, s.Get(f)+steps*l.Range(f).Step, l)
}
