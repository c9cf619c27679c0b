package bouncy

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of a label's attributes, suitable for YAML.
type Config struct {
	Text               string  `yaml:"text"`
	TextSize           float64 `yaml:"text_size"`
	TextUnit           string  `yaml:"text_unit"`
	TextColor          string  `yaml:"text_color"`
	AnimationDuration  int     `yaml:"animation_duration"` // milliseconds
	AnimationStagger   int     `yaml:"animation_stagger"`  // milliseconds
	AnimationDirection string  `yaml:"animation_direction"`
	Easing             string  `yaml:"easing"`
	PoolCapacity       int     `yaml:"pool_capacity"`
}

// DefaultConfig returns the stock attributes: 15sp black text, 450ms per
// character, 45ms stagger, upward, linear.
func DefaultConfig() Config {
	return Config{
		TextSize:           15,
		TextUnit:           "sp",
		TextColor:          "#000000",
		AnimationDuration:  450,
		AnimationStagger:   45,
		AnimationDirection: "upward",
		Easing:             "linear",
		PoolCapacity:       DefaultPoolCapacity,
	}
}

// LoadConfig parses YAML on top of DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bouncy: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field without modifying anything.
func (c Config) Validate() error {
	if c.TextSize <= 0 {
		return fmt.Errorf("bouncy: text_size must be positive, got %v", c.TextSize)
	}
	if _, err := ParseUnit(c.TextUnit); err != nil {
		return err
	}
	if _, err := ParseColor(c.TextColor); err != nil {
		return err
	}
	if c.AnimationDuration < 0 {
		return fmt.Errorf("bouncy: animation_duration must not be negative, got %d", c.AnimationDuration)
	}
	if c.AnimationStagger < 0 {
		return fmt.Errorf("bouncy: animation_stagger must not be negative, got %d", c.AnimationStagger)
	}
	if _, err := ParseDirection(c.AnimationDirection); err != nil {
		return err
	}
	if _, err := ParseEasing(c.Easing); err != nil {
		return err
	}
	if c.PoolCapacity <= 0 {
		return fmt.Errorf("bouncy: pool_capacity must be positive, got %d", c.PoolCapacity)
	}
	return nil
}

func (c Config) duration() time.Duration {
	return time.Duration(c.AnimationDuration) * time.Millisecond
}

func (c Config) stagger() time.Duration {
	return time.Duration(c.AnimationStagger) * time.Millisecond
}

// Options converts a validated config to label options. The text itself is
// not included; see NewLabelFromConfig.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	unit, _ := ParseUnit(c.TextUnit)
	col, _ := ParseColor(c.TextColor)
	dir, _ := ParseDirection(c.AnimationDirection)
	fn, _ := ParseEasing(c.Easing)
	return []Option{
		WithTextSize(unit, c.TextSize),
		WithColor(col),
		WithDuration(c.duration()),
		WithStagger(c.stagger()),
		WithDirection(dir),
		WithEasing(fn),
		WithPoolCapacity(c.PoolCapacity),
	}, nil
}

// NewLabelFromConfig creates a label from cfg and sets its initial text
// without animation. Extra options are applied after the config.
func NewLabelFromConfig(font Font, cfg Config, extra ...Option) (*Label, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	l := NewLabel(font, append(opts, extra...)...)
	l.SetText(cfg.Text)
	return l, nil
}

// --- Options ---

// Option configures a Label at construction.
type Option func(*Label)

// WithDuration sets the per-character animation duration.
func WithDuration(d time.Duration) Option {
	return func(l *Label) { l.SetAnimationDuration(d) }
}

// WithStagger sets the stagger interval.
func WithStagger(d time.Duration) Option {
	return func(l *Label) { l.SetAnimationStagger(d) }
}

// WithDirection sets the animation direction. Invalid directions are ignored.
func WithDirection(d Direction) Option {
	return func(l *Label) { _ = l.SetAnimationDirection(d) }
}

// WithEasing sets the easing function.
func WithEasing(fn ease.TweenFunc) Option {
	return func(l *Label) { l.SetAnimationEasing(fn) }
}

// WithTextSize sets the initial text size.
func WithTextSize(unit Unit, size float64) Option {
	return func(l *Label) {
		l.textUnit = unit
		l.textSize = size
	}
}

// WithDensity sets the display density.
func WithDensity(d Density) Option {
	return func(l *Label) { l.density = d }
}

// WithColor sets the text color.
func WithColor(c Color) Option {
	return func(l *Label) { l.color = c }
}

// WithPoolCapacity sets how many released records are kept for reuse.
// It panics if n is not positive.
func WithPoolCapacity(n int) Option {
	return func(l *Label) { l.pool = newRecordPool(n) }
}

// WithFrameScheduler attaches the label to the host's frame clock.
func WithFrameScheduler(fs FrameScheduler) Option {
	return func(l *Label) { l.frames = fs }
}
