package bouncy

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tanema/gween/ease"
)

// Label displays a single line of text and animates every change character
// by character. All methods must be called from the same goroutine as Update
// and Draw; Label is not safe for concurrent use.
type Label struct {
	font     Font
	text     string
	prevText string // text before the latest change

	// Record storage. A record handle lives in exactly one of primary,
	// transient or pool.
	arena     arena
	pool      *recordPool
	primary   []recordID
	transient []recordID

	anim          animator
	frames        FrameScheduler
	cleanupPosted bool // cleanup posted since the last scheduled animation
	cleanupFn     func()

	textSize   float64
	textUnit   Unit
	textSizePx float64
	density    Density
	color      Color

	direction  Direction
	stagger    time.Duration
	suppressed bool

	bounds       Rect
	boundsValid  bool
	layoutHeight float64

	debug    bool
	debugOut io.Writer
}

// NewLabel creates an empty label measuring text with font. Without options
// it uses the defaults of DefaultConfig.
func NewLabel(font Font, opts ...Option) *Label {
	cfg := DefaultConfig()
	l := &Label{
		font:      font,
		textSize:  cfg.TextSize,
		textUnit:  UnitSp,
		density:   DefaultDensity,
		color:     ColorBlack,
		direction: DirectionUpward,
		stagger:   cfg.stagger(),
		anim:      newAnimator(cfg.duration(), ease.Linear),
		debugOut:  os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.pool == nil {
		l.pool = newRecordPool(DefaultPoolCapacity)
	}
	if l.frames == nil {
		l.frames = NewLoop()
	}
	l.cleanupFn = l.cleanup
	l.textSizePx = l.density.ToPixels(l.textUnit, l.textSize)
	return l
}

// Text returns the current logical text.
func (l *Label) Text() string {
	return l.text
}

// SetText changes the displayed text and starts the transition from the
// previous text. Setting the same text again does nothing. Animations still
// running from an earlier change are completed first.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	prev := l.text
	l.prevText, l.text = prev, text

	l.endAnimations()
	next := l.generate(text)
	l.boundsValid = false

	if l.suppressed {
		l.releaseAll(l.primary)
		l.primary = append(l.primary[:0], next...)
		l.debugf("set %q -> %q without animation", prev, text)
	} else {
		stats := l.transition(next)
		l.debugTransition(prev, text, stats)
	}
	l.frames.RequestFrame()
}

// SetTextResource looks id up in res and sets the result as text.
func (l *Label) SetTextResource(res Resources, id string) error {
	s, ok := res.String(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownResource, id)
	}
	l.SetText(s)
	return nil
}

// SuppressAnimations enables or disables bulk-update mode. While suppressed,
// SetText replaces the text directly with no diff and no animation.
func (l *Label) SuppressAnimations(suppress bool) {
	l.suppressed = suppress
}

// AnimationsSuppressed reports whether bulk-update mode is on.
func (l *Label) AnimationsSuppressed() bool {
	return l.suppressed
}

// SetAnimationDuration sets the duration of a single character's animation.
// It applies to transitions started afterwards.
func (l *Label) SetAnimationDuration(d time.Duration) {
	l.anim.duration = max(d, 0)
}

// AnimationDuration returns the per-character animation duration.
func (l *Label) AnimationDuration() time.Duration {
	return l.anim.duration
}

// SetAnimationStagger sets the delay between the starts of two successive
// character animations. It applies to transitions started afterwards.
func (l *Label) SetAnimationStagger(d time.Duration) {
	l.stagger = max(d, 0)
}

// AnimationStagger returns the stagger interval.
func (l *Label) AnimationStagger() time.Duration {
	return l.stagger
}

// SetAnimationDirection sets the direction characters travel. Any value
// other than DirectionUpward or DirectionDownward returns ErrInvalidDirection
// and leaves the label unchanged.
func (l *Label) SetAnimationDirection(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	l.direction = d
	return nil
}

// AnimationDirection returns the current direction.
func (l *Label) AnimationDirection() Direction {
	return l.direction
}

// SetAnimationEasing sets the easing function used for subsequent
// transitions. nil restores linear interpolation.
func (l *Label) SetAnimationEasing(fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	l.anim.easing = fn
}

// SetTextSize sets the text size in the given unit. Running animations are
// completed and the text is laid out again from scratch.
func (l *Label) SetTextSize(unit Unit, size float64) {
	l.textUnit = unit
	l.textSize = size
	l.relayout()
}

// TextSize returns the text size in pixels.
func (l *Label) TextSize() float64 {
	return l.textSizePx
}

// SetDensity sets the display density used to convert dp, sp and pt sizes.
func (l *Label) SetDensity(d Density) {
	l.density = d
	l.relayout()
}

// SetFont swaps the measuring font and lays the text out again.
func (l *Label) SetFont(font Font) {
	l.font = font
	l.relayout()
}

// Font returns the measuring font.
func (l *Label) Font() Font {
	return l.font
}

// SetTextColor changes the paint color. Only a repaint is needed.
func (l *Label) SetTextColor(c Color) {
	l.color = c
	l.frames.RequestFrame()
}

// TextColor returns the paint color.
func (l *Label) TextColor() Color {
	return l.color
}

// SetLayoutHeight sets the height the label is drawn in; the glyph box is
// centered vertically within it. Zero uses the intrinsic height.
func (l *Label) SetLayoutHeight(h float64) {
	l.layoutHeight = max(h, 0)
	l.frames.RequestFrame()
}

// MeasureIntrinsicSize returns the width of the current text and the height
// of the glyph box. The result is cached until the text, size or font
// changes.
func (l *Label) MeasureIntrinsicSize() (width, height float64) {
	l.ensureBounds()
	return l.bounds.Width, l.bounds.Height
}

// Animating reports whether any character animation is still running.
func (l *Label) Animating() bool {
	return l.anim.running > 0
}

// Update advances running animations by dt seconds.
func (l *Label) Update(dt float64) {
	l.anim.advance(dt, &l.arena)
}

// relayout force-completes animations and rebuilds the primary sequence
// with the current font and size.
func (l *Label) relayout() {
	l.textSizePx = l.density.ToPixels(l.textUnit, l.textSize)

	l.endAnimations()
	l.releaseAll(l.primary)
	l.primary = append(l.primary[:0], l.generate(l.text)...)
	l.boundsValid = false
	l.frames.RequestFrame()
}

// endAnimations completes every running animation and reclaims the
// transient records synchronously.
func (l *Label) endAnimations() {
	if n := l.anim.endAll(&l.arena); n > 0 {
		l.debugf("ended %d running animations", n)
	}
	l.cleanup()
}

func (l *Label) ensureBounds() {
	if l.boundsValid {
		return
	}
	var w float64
	for _, id := range l.primary {
		w += l.arena.at(id).w
	}
	l.bounds = Rect{Width: w, Height: l.font.Metrics(l.textSizePx).Height()}
	l.boundsValid = true
}
