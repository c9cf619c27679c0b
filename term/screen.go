package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bouncy"
)

// ScreenCanvas draws glyphs straight into a tcell screen region. Glyphs
// outside Width x Height cells from (X, Y) are clipped.
type ScreenCanvas struct {
	Screen        tcell.Screen
	X, Y          int
	Width, Height int
	Style         tcell.Style // base style; the glyph color replaces its foreground
}

// Clear fills the region with blanks in the base style.
func (c *ScreenCanvas) Clear() {
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			c.Screen.SetContent(c.X+col, c.Y+row, ' ', nil, c.Style)
		}
	}
}

// DrawGlyph implements bouncy.Canvas.
func (c *ScreenCanvas) DrawGlyph(glyph string, x, baseline float64, style bouncy.GlyphStyle) {
	col := int(math.Round(x))
	row := int(math.Round(baseline)) - 1
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width || glyph == "" {
		return
	}
	runes := []rune(glyph)
	r, g, b, _ := style.Color.RGBA8()
	st := c.Style.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	c.Screen.SetContent(c.X+col, c.Y+row, runes[0], runes[1:], st)
}
