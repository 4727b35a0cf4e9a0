package animate

import (
	"fmt"
	"strings"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

func Linear(t float64) float64 {
	return clamp01(t)
}

func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic decelerates into the target; the default for expansion.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// EasingByName resolves a config value such as "ease-out-cubic".
func EasingByName(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease-out-cubic", "ease-out":
		return EaseOutCubic, nil
	case "ease-out-quad":
		return EaseOutQuad, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
