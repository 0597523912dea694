package config

import (
	_ "embed"
)

//go:embed defaults/ring.yaml
var defaultRingYAML []byte

// DefaultRingConfig returns the default Ring Rush configuration.
// The needle half-angle is pi/64 radians (2.8125 degrees).
func DefaultRingConfig() RingConfig {
	return RingConfig{
		Ring: BandConfig{
			InnerRadius: 45,
			OuterRadius: 50,
		},
		Needle: WedgeConfig{
			InnerRadius:  40,
			OuterRadius:  55,
			HalfAngleDeg: 2.8125,
			Resolution:   1,
		},
		Target: WedgeConfig{
			InnerRadius:  43,
			OuterRadius:  52,
			HalfAngleDeg: 25,
			Resolution:   5,
		},
		Speed: SpeedConfig{
			Initial:   1.0,
			Increment: 0.5,
			Max:       10.0,
		},
	}
}
