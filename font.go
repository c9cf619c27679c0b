package bouncy

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the text measurement collaborator used by the layout generator.
// Sizes are in pixels.
type Font interface {
	// Advance returns the horizontal advance of a single glyph cluster.
	Advance(glyph string, size float64) float64
	// Metrics returns the vertical metrics at the given size.
	Metrics(size float64) FontMetrics
}

// FontMetrics holds vertical font metrics. Both values are positive distances
// from the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
}

// Height is the height of the glyph box, the distance a character travels
// when it slides in or out.
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font measurement and
// rendering. One GoTextFace is cached per requested size.
type TTFFont struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadTTFFont parses raw TTF/OTF data.
func LoadTTFFont(ttfData []byte) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bouncy: failed to parse TTF data: %w", err)
	}
	return &TTFFont{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the GoTextFace for size, for direct text/v2 rendering.
func (f *TTFFont) Face(size float64) *text.GoTextFace {
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// Advance returns the advance width of glyph at size.
func (f *TTFFont) Advance(glyph string, size float64) float64 {
	return text.Advance(glyph, f.Face(size))
}

// Metrics returns the horizontal-layout ascent and descent at size.
func (f *TTFFont) Metrics(size float64) FontMetrics {
	m := f.Face(size).Metrics()
	return FontMetrics{Ascent: m.HAscent, Descent: m.HDescent}
}

// --- BitmapFont ---

type bitmapGlyph struct {
	id       rune
	x, y     uint16
	width    uint16
	height   uint16
	xOffset  int16
	yOffset  int16
	xAdvance int16
	page     uint16
}

const asciiGlyphCount = 128

// BitmapFont renders text from pre-rasterized glyph atlases in BMFont format.
// Glyphs are scaled from the font's native size to the requested size.
type BitmapFont struct {
	size       float64 // native size in pixels
	lineHeight float64
	base       float64

	asciiGlyphs [asciiGlyphCount]bitmapGlyph
	asciiSet    [asciiGlyphCount]bool
	extGlyphs   map[rune]*bitmapGlyph

	pages []*ebiten.Image
}

// LoadBitmapFont parses BMFont .fnt text-format data. Attach the atlas page
// images with SetPages before drawing through an ImageCanvas.
func LoadBitmapFont(fntData []byte) (*BitmapFont, error) {
	f := &BitmapFont{}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "info":
			if v, ok := fields["size"]; ok {
				size, _ := strconv.ParseFloat(v, 64)
				if size < 0 {
					size = -size // negative sizes mean "match cell height"
				}
				f.size = size
			}

		case "common":
			if v, ok := fields["lineHeight"]; ok {
				f.lineHeight, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := fields["base"]; ok {
				f.base, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			charCount++
			g := bitmapGlyph{
				id:       rune(atoi(fields["id"])),
				x:        uint16(atoi(fields["x"])),
				y:        uint16(atoi(fields["y"])),
				width:    uint16(atoi(fields["width"])),
				height:   uint16(atoi(fields["height"])),
				xOffset:  int16(atoi(fields["xoffset"])),
				yOffset:  int16(atoi(fields["yoffset"])),
				xAdvance: int16(atoi(fields["xadvance"])),
				page:     uint16(atoi(fields["page"])),
			}
			if g.id >= 0 && g.id < asciiGlyphCount {
				f.asciiGlyphs[g.id] = g
				f.asciiSet[g.id] = true
			} else {
				if f.extGlyphs == nil {
					f.extGlyphs = make(map[rune]*bitmapGlyph)
				}
				f.extGlyphs[g.id] = &g
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bouncy: error reading .fnt data: %w", err)
	}
	if f.lineHeight == 0 {
		return nil, fmt.Errorf("bouncy: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("bouncy: .fnt data has no char definitions")
	}
	if f.size == 0 {
		f.size = f.lineHeight
	}
	return f, nil
}

// SetPages attaches the atlas page images, indexed by the .fnt page id.
func (f *BitmapFont) SetPages(pages ...*ebiten.Image) {
	f.pages = pages
}

// NativeSize returns the size the atlas was rasterized at.
func (f *BitmapFont) NativeSize() float64 {
	return f.size
}

// Advance returns the scaled advance of the first rune of glyph. Missing
// glyphs have zero advance.
func (f *BitmapFont) Advance(glyph string, size float64) float64 {
	g := f.lookup(glyph)
	if g == nil {
		return 0
	}
	return float64(g.xAdvance) * size / f.size
}

// Metrics scales the font's base and line height to size.
func (f *BitmapFont) Metrics(size float64) FontMetrics {
	s := size / f.size
	return FontMetrics{
		Ascent:  f.base * s,
		Descent: (f.lineHeight - f.base) * s,
	}
}

func (f *BitmapFont) lookup(glyph string) *bitmapGlyph {
	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		return nil
	}
	return f.glyph(r)
}

// glyph returns the glyph for the given rune, or nil if not found.
func (f *BitmapFont) glyph(r rune) *bitmapGlyph {
	if r >= 0 && r < asciiGlyphCount {
		if f.asciiSet[r] {
			return &f.asciiGlyphs[r]
		}
		return nil
	}
	return f.extGlyphs[r]
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}
