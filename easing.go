package bouncy

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
	"spring":       SpringEasing(8, 0.65),
}

// ParseEasing returns the easing function registered under name. The empty
// name means linear.
func ParseEasing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("bouncy: unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames lists the names accepted by ParseEasing, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const springSteps = 120

// SpringEasing returns an easing that follows a damped harmonic spring
// released at 0 with its rest position at 1. One animation duration maps to
// one second of spring time. Damping below 1 overshoots before settling; the
// curve always ends exactly at 1.
func SpringEasing(angularFrequency, dampingRatio float64) ease.TweenFunc {
	var table [springSteps + 1]float64
	s := harmonica.NewSpring(1.0/springSteps, angularFrequency, dampingRatio)
	pos, vel := 0.0, 0.0
	for i := 1; i < springSteps; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSteps] = 1

	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		if t <= 0 {
			return b
		}
		p := float64(t/d) * springSteps
		i := int(p)
		f := p - float64(i)
		v := table[i] + (table[i+1]-table[i])*f
		return b + c*float32(v)
	}
}
