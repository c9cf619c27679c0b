// Package demo holds the controls shared by the interactive examples: a
// numeric counter, the duration and stagger sliders and the direction toggle.
package demo

import (
	"strconv"
	"strings"
	"time"

	"github.com/phanxgames/bouncy"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultValue is the text shown at startup and used when an empty value is
// submitted.
const DefaultValue = "1000"

// Slider bounds, in milliseconds.
const (
	MinDuration = 50
	MaxDuration = 1000
	MinStagger  = 0
	MaxStagger  = 500
)

// Controls mirrors the demo's configuration widgets and applies them to a
// label.
type Controls struct {
	Duration  int // milliseconds
	Stagger   int // milliseconds
	Direction bouncy.Direction
	Easing    string
	Grouping  bool // format numbers with thousands separators

	printer *message.Printer
}

// NewControls returns controls at the stock values (450ms, 45ms, upward,
// linear).
func NewControls() *Controls {
	return &Controls{
		Duration:  450,
		Stagger:   45,
		Direction: bouncy.DirectionUpward,
		Easing:    "linear",
		printer:   message.NewPrinter(language.English),
	}
}

// FromLabel reads the current configuration back from l.
func (c *Controls) FromLabel(l *bouncy.Label) {
	c.Duration = int(l.AnimationDuration() / time.Millisecond)
	c.Stagger = int(l.AnimationStagger() / time.Millisecond)
	c.Direction = l.AnimationDirection()
}

// AdjustDuration moves the duration slider by delta, clamped to its range.
func (c *Controls) AdjustDuration(delta int) {
	c.Duration = clamp(c.Duration+delta, MinDuration, MaxDuration)
}

// AdjustStagger moves the stagger slider by delta, clamped to its range.
func (c *Controls) AdjustStagger(delta int) {
	c.Stagger = clamp(c.Stagger+delta, MinStagger, MaxStagger)
}

// ToggleDirection flips between upward and downward.
func (c *Controls) ToggleDirection() {
	if c.Direction == bouncy.DirectionUpward {
		c.Direction = bouncy.DirectionDownward
	} else {
		c.Direction = bouncy.DirectionUpward
	}
}

// CycleEasing switches to the next easing in bouncy.EasingNames order.
func (c *Controls) CycleEasing() {
	names := bouncy.EasingNames()
	next := 0
	for i, name := range names {
		if name == c.Easing {
			next = (i + 1) % len(names)
			break
		}
	}
	c.Easing = names[next]
}

// Apply pushes the configuration to l.
func (c *Controls) Apply(l *bouncy.Label) error {
	fn, err := bouncy.ParseEasing(c.Easing)
	if err != nil {
		return err
	}
	l.SetAnimationEasing(fn)
	l.SetAnimationDuration(time.Duration(c.Duration) * time.Millisecond)
	l.SetAnimationStagger(time.Duration(c.Stagger) * time.Millisecond)
	return l.SetAnimationDirection(c.Direction)
}

// Step adds delta to the number shown by l. Text that is not a number is
// left untouched.
func (c *Controls) Step(l *bouncy.Label, delta int) {
	if next, ok := c.Adjust(l.Text(), delta); ok {
		l.SetText(next)
	}
}

// Adjust parses text as an integer (separators allowed), adds delta and
// formats the result. It reports false for malformed input.
func (c *Controls) Adjust(text string, delta int) (string, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(text), ",", ""))
	if err != nil {
		return "", false
	}
	return c.Format(n + delta), true
}

// Format renders n, grouped by thousands when Grouping is on.
func (c *Controls) Format(n int) string {
	if !c.Grouping {
		return strconv.Itoa(n)
	}
	return c.printer.Sprintf("%d", n)
}

// SetSilently replaces the label text without a transition. An empty value
// falls back to DefaultValue.
func SetSilently(l *bouncy.Label, text string) {
	if text == "" {
		text = DefaultValue
	}
	l.SuppressAnimations(true)
	l.SetText(text)
	l.SuppressAnimations(false)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
