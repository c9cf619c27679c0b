package term

import (
	"github.com/mattn/go-runewidth"
	"github.com/phanxgames/bouncy"
)

// CellFont measures glyph clusters in terminal cells. The size argument is
// ignored; a terminal has a single text size.
type CellFont struct {
	cond *runewidth.Condition
}

// NewCellFont returns a CellFont. With eastAsian set, ambiguous-width runes
// count as two cells.
func NewCellFont(eastAsian bool) *CellFont {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &CellFont{cond: cond}
}

// Advance returns the cell width of glyph. Zero-width clusters still occupy
// one cell so that they stay addressable.
func (f *CellFont) Advance(glyph string, _ float64) float64 {
	w := f.cond.StringWidth(glyph)
	if w == 0 && glyph != "" {
		w = 1
	}
	return float64(w)
}

// Metrics places the baseline at the bottom of a single row.
func (f *CellFont) Metrics(float64) bouncy.FontMetrics {
	return bouncy.FontMetrics{Ascent: 1}
}
