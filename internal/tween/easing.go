package tween

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// Easing maps time progress in [0, 1] to value progress in [0, 1].
type Easing func(t float64) float64

var (
	// Linear moves at constant speed.
	Linear Easing = func(t float64) float64 { return t }

	// AccelerateDecelerate starts and ends slowly, the platform's default curve.
	AccelerateDecelerate Easing = func(t float64) float64 {
		return math.Cos((t+1)*math.Pi)/2 + 0.5
	}
)

const springSamples = 120

// Spring builds a curve from a harmonica spring settling from 0 to 1.
// The curve is clamped and made monotonic so it never overshoots its target.
func Spring(angularFrequency, dampingRatio float64) Easing {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), angularFrequency, dampingRatio)
	samples := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		v := math.Min(1, math.Max(samples[i-1], pos))
		samples[i] = v
	}
	samples[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// ForName resolves a configured easing name. Unknown names fall back to
// AccelerateDecelerate.
func ForName(name model.Easing) Easing {
	switch name {
	case model.EasingLinear:
		return Linear
	case model.EasingSpring:
		return Spring(12, 1)
	default:
		return AccelerateDecelerate
	}
}
