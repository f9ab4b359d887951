package flame

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("invalid flame configuration")
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")
)

// Config is the immutable description of an animation.
type Config struct {
	Points   int
	Baseline [3]AffineMap

	RotationRates [3]float64 // cycles per second
	DriftRates    [3]float64 // radians per millisecond
	ColourRate    float64    // hue turns per millisecond

	FadeInMs       float64
	FadeOutMs      float64
	FadeOutPercent float64
}

func DefaultConfig() Config {
	return Config{
		Points:   1 << 20,
		Baseline: DefaultBaseline(),

		RotationRates: [3]float64{0.05, -0.07, 0.03},
		DriftRates:    [3]float64{0.00031, 0.00047, 0.00023},
		ColourRate:    0.00005,

		FadeInMs:       3000,
		FadeOutMs:      1000,
		FadeOutPercent: 0.9,
	}
}

func (c Config) Validate() error {
	if c.Points <= 0 {
		return fmt.Errorf("%w: points must be positive, got %v", ErrInvalidConfig, c.Points)
	}
	if c.FadeOutPercent < 0 || c.FadeOutPercent > 1 {
		return fmt.Errorf("%w: fade out percent must be in [0, 1], got %v", ErrInvalidConfig, c.FadeOutPercent)
	}
	if c.FadeInMs < 0 || c.FadeOutMs <= 0 {
		return fmt.Errorf("%w: fade durations must be positive", ErrInvalidConfig)
	}
	for i, m := range c.Baseline {
		if !m.IsContraction() {
			return fmt.Errorf("%w: shape map %v is not a contraction (spectral radius %v)", ErrInvalidConfig, i, m.SpectralRadius())
		}
	}
	return nil
}
