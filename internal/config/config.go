// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "math"

// RingConfig contains all configuration for the Ring Rush game.
type RingConfig struct {
	Ring   BandConfig  `yaml:"ring"`
	Needle WedgeConfig `yaml:"needle"`
	Target WedgeConfig `yaml:"target"`
	Speed  SpeedConfig `yaml:"speed"`
}

// BandConfig defines the visual ring band, in world units.
type BandConfig struct {
	InnerRadius float64 `yaml:"inner_radius"`
	OuterRadius float64 `yaml:"outer_radius"`
}

// WedgeConfig defines one annular wedge (needle or target zone).
type WedgeConfig struct {
	InnerRadius  float64 `yaml:"inner_radius"`
	OuterRadius  float64 `yaml:"outer_radius"`
	HalfAngleDeg float64 `yaml:"half_angle_deg"` // angular half-width in degrees
	Resolution   int     `yaml:"resolution"`     // tessellation quads across the span
}

// HalfAngle returns the wedge's angular half-width in radians.
func (w WedgeConfig) HalfAngle() float64 {
	return w.HalfAngleDeg * math.Pi / 180
}

// SpeedConfig defines the needle's rotation speed ramp, in radians/second.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // added to magnitude per successful score
	Max       float64 `yaml:"max"`       // magnitude cap
}
