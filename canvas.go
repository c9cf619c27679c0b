package bouncy

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GlyphStyle carries the paint state shared by every glyph of a label.
type GlyphStyle struct {
	Size  float64 // text size in pixels
	Color Color
}

// Canvas is the drawing collaborator of the render loop: it paints a single
// glyph cluster with its left edge at x and its baseline at baseline.
type Canvas interface {
	DrawGlyph(glyph string, x, baseline float64, style GlyphStyle)
}

// ImageCanvas draws glyphs onto an Ebitengine image. Font must be the
// *TTFFont or *BitmapFont the label measures with.
type ImageCanvas struct {
	Target *ebiten.Image
	Font   Font
	X, Y   float64 // label origin within Target

	textOp  text.DrawOptions
	imageOp ebiten.DrawImageOptions
}

// DrawGlyph implements Canvas.
func (c *ImageCanvas) DrawGlyph(glyph string, x, baseline float64, style GlyphStyle) {
	if c.Target == nil {
		return
	}
	switch f := c.Font.(type) {
	case *TTFFont:
		c.drawTTF(f, glyph, x, baseline, style)
	case *BitmapFont:
		c.drawBitmap(f, glyph, x, baseline, style)
	}
}

func (c *ImageCanvas) drawTTF(f *TTFFont, glyph string, x, baseline float64, style GlyphStyle) {
	face := f.Face(style.Size)
	m := face.Metrics()

	// text/v2 positions the top of the line box at the origin.
	c.textOp.GeoM.Reset()
	c.textOp.GeoM.Translate(c.X+x, c.Y+baseline-m.HAscent)
	c.textOp.ColorScale.Reset()
	scaleColor(&c.textOp.ColorScale, style.Color)
	text.Draw(c.Target, glyph, face, &c.textOp)
}

func (c *ImageCanvas) drawBitmap(f *BitmapFont, glyph string, x, baseline float64, style GlyphStyle) {
	g := f.lookup(glyph)
	if g == nil || g.width == 0 || g.height == 0 || int(g.page) >= len(f.pages) {
		return
	}
	page := f.pages[g.page]
	if page == nil {
		return
	}
	sub := page.SubImage(image.Rect(
		int(g.x), int(g.y),
		int(g.x)+int(g.width), int(g.y)+int(g.height),
	)).(*ebiten.Image)

	s := style.Size / f.size
	c.imageOp.GeoM.Reset()
	c.imageOp.GeoM.Scale(s, s)
	c.imageOp.GeoM.Translate(
		c.X+x+float64(g.xOffset)*s,
		c.Y+baseline+(float64(g.yOffset)-f.base)*s,
	)
	c.imageOp.ColorScale.Reset()
	scaleColor(&c.imageOp.ColorScale, style.Color)
	c.imageOp.Filter = ebiten.FilterLinear
	c.Target.DrawImage(sub, &c.imageOp)
}

// scaleColor applies a premultiplied tint.
func scaleColor(cs *ebiten.ColorScale, col Color) {
	cs.Scale(
		float32(col.R*col.A),
		float32(col.G*col.A),
		float32(col.B*col.A),
		float32(col.A),
	)
}
