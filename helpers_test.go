package bouncy

import (
	"strings"
	"testing"
)

// fixedFont is a deterministic Font: every glyph is 10 units wide at size 10
// unless listed in widths, with an ascent of 8 and a descent of 2.
type fixedFont struct {
	widths map[string]float64
}

func (f fixedFont) Advance(glyph string, size float64) float64 {
	w, ok := f.widths[glyph]
	if !ok {
		w = 10
	}
	return w * size / 10
}

func (f fixedFont) Metrics(size float64) FontMetrics {
	return FontMetrics{Ascent: 8 * size / 10, Descent: 2 * size / 10}
}

// proportionalFont makes "1" narrow and "W" wide so that length-preserving
// changes still move characters.
var proportionalFont = fixedFont{widths: map[string]float64{"1": 5, "W": 15}}

type drawCall struct {
	glyph    string
	x        float64
	baseline float64
}

// recordingCanvas records every DrawGlyph call.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawGlyph(glyph string, x, baseline float64, _ GlyphStyle) {
	c.calls = append(c.calls, drawCall{glyph, x, baseline})
}

func (c *recordingCanvas) glyphs() string {
	var b strings.Builder
	for _, call := range c.calls {
		b.WriteString(call.glyph)
	}
	return b.String()
}

// countingCanvas counts calls without allocating.
type countingCanvas struct {
	n int
}

func (c *countingCanvas) DrawGlyph(string, float64, float64, GlyphStyle) {
	c.n++
}

func newTestLabel(t *testing.T, opts ...Option) (*Label, *Loop) {
	t.Helper()
	loop := NewLoop()
	base := []Option{
		WithTextSize(UnitPx, 10),
		WithFrameScheduler(loop),
	}
	l := NewLabel(fixedFont{}, append(base, opts...)...)
	return l, loop
}

// primaryText concatenates the glyphs of the primary sequence.
func (l *Label) primaryText() string {
	var b strings.Builder
	for _, id := range l.primary {
		b.WriteString(l.arena.at(id).glyph)
	}
	return b.String()
}

// primaryX returns the x of each primary record.
func (l *Label) primaryX() []float64 {
	xs := make([]float64, len(l.primary))
	for i, id := range l.primary {
		xs[i] = l.arena.at(id).x
	}
	return xs
}

// checkOwnership fails if a record handle is listed twice or if the arena
// holds live records that no list refers to.
func checkOwnership(t *testing.T, l *Label) {
	t.Helper()
	seen := make(map[recordID]string)
	mark := func(list string, ids []recordID) {
		for _, id := range ids {
			if prev, ok := seen[id]; ok {
				t.Fatalf("record %d listed in both %s and %s", id, prev, list)
			}
			seen[id] = list
			if !l.arena.at(id).live {
				t.Fatalf("record %d in %s is discarded", id, list)
			}
		}
	}
	mark("primary", l.primary)
	mark("transient", l.transient)
	mark("pool", l.pool.free)
	if got := l.arena.live(); got != len(seen) {
		t.Fatalf("arena has %d live records, lists hold %d", got, len(seen))
	}
}
