package bouncy

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// --- BMFont test fixture ---

// Digits and a comma, rasterized at 32px.
const testFntData = `info face="Digits" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=0,0
common lineHeight=40 base=30 scaleW=256 scaleH=64 pages=1 packed=0
page id=0 file="digits.png"
chars count=12
char id=44  x=200 y=0   width=6   height=10  xoffset=1   yoffset=24  xadvance=8   page=0
char id=48  x=0   y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=49  x=18  y=0   width=10  height=28  xoffset=3   yoffset=2   xadvance=20  page=0
char id=50  x=28  y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=51  x=46  y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=52  x=64  y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=53  x=82  y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=54  x=100 y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=55  x=118 y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=56  x=136 y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=57  x=154 y=0   width=18  height=28  xoffset=1   yoffset=2   xadvance=20  page=0
char id=8364 x=172 y=0  width=20  height=28  xoffset=0   yoffset=2   xadvance=22  page=0
`

const testFntDataNoLineHeight = `info face="Bad" size=32
page id=0 file="digits.png"
chars count=1
char id=48 x=0 y=0 width=10 height=10 xoffset=0 yoffset=0 xadvance=12 page=0
`

const testFntDataNoChars = `info face="Bad" size=32
common lineHeight=40 base=30 scaleW=256 scaleH=64 pages=1 packed=0
page id=0 file="digits.png"
`

func loadTestFont(t *testing.T) *BitmapFont {
	t.Helper()
	f, err := LoadBitmapFont([]byte(testFntData))
	if err != nil {
		t.Fatalf("LoadBitmapFont: %v", err)
	}
	return f
}

func TestLoadBitmapFont_Glyphs(t *testing.T) {
	f := loadTestFont(t)

	count := 0
	for i := range f.asciiSet {
		if f.asciiSet[i] {
			count++
		}
	}
	if count != 11 {
		t.Errorf("ASCII glyphs = %d, want 11", count)
	}
	if f.glyph('€') == nil {
		t.Error("extended glyph '€' not found")
	}
	if f.glyph('A') != nil {
		t.Error("'A' should be missing")
	}
	if f.NativeSize() != 32 {
		t.Errorf("NativeSize = %v, want 32", f.NativeSize())
	}
}

func TestLoadBitmapFont_MissingLineHeight(t *testing.T) {
	if _, err := LoadBitmapFont([]byte(testFntDataNoLineHeight)); err == nil {
		t.Error("expected error for missing lineHeight")
	}
}

func TestLoadBitmapFont_NoChars(t *testing.T) {
	if _, err := LoadBitmapFont([]byte(testFntDataNoChars)); err == nil {
		t.Error("expected error for no char definitions")
	}
}

func TestLoadBitmapFont_NegativeSize(t *testing.T) {
	data := "info size=-16\ncommon lineHeight=20 base=15\nchar id=48 xadvance=10\n"
	f, err := LoadBitmapFont([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if f.NativeSize() != 16 {
		t.Errorf("NativeSize = %v, want 16", f.NativeSize())
	}
}

func TestBitmapFont_ScaledAdvance(t *testing.T) {
	f := loadTestFont(t)

	if got := f.Advance("1", 32); got != 20 {
		t.Errorf("Advance at native size = %v, want 20", got)
	}
	if got := f.Advance("1", 16); got != 10 {
		t.Errorf("Advance at half size = %v, want 10", got)
	}
	if got := f.Advance(",", 64); got != 16 {
		t.Errorf("Advance(',') at 64 = %v, want 16", got)
	}
	if got := f.Advance("A", 32); got != 0 {
		t.Errorf("Advance of missing glyph = %v, want 0", got)
	}
}

func TestBitmapFont_ScaledMetrics(t *testing.T) {
	f := loadTestFont(t)

	m := f.Metrics(16)
	if m.Ascent != 15 || m.Descent != 5 {
		t.Errorf("Metrics(16) = %+v, want ascent 15, descent 5", m)
	}
	if m.Height() != 20 {
		t.Errorf("Height = %v, want 20", m.Height())
	}
}

func TestLoadTTFFont_InvalidData(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a TTF file")); err == nil {
		t.Error("expected error for invalid TTF data")
	}
}

func TestTTFFont_MatchesTextAdvance(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	for _, g := range []string{"0", "1", "W", ","} {
		want := text.Advance(g, &text.GoTextFace{Source: f.source, Size: 24})
		if got := f.Advance(g, 24); math.Abs(got-want) > 1e-9 {
			t.Errorf("Advance(%q) = %v, want %v", g, got, want)
		}
	}
	if f.Face(24) != f.Face(24) {
		t.Error("faces are not cached per size")
	}

	m := f.Metrics(24)
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics = %+v, want positive ascent and descent", m)
	}
}

func TestImageCanvas_DrawLabel(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	l := NewLabel(f, WithTextSize(UnitPx, 24), WithColor(ColorWhite))
	l.SetText("12")
	l.SetText("13")
	l.Update(0.1)

	c := &ImageCanvas{Target: ebiten.NewImage(64, 32), Font: f}
	l.Draw(c)

	c.Target = nil
	l.Draw(c)
}

func TestImageCanvas_DrawBitmap(t *testing.T) {
	f := loadTestFont(t)
	f.SetPages(ebiten.NewImage(256, 64))

	l := NewLabel(f, WithTextSize(UnitPx, 16))
	l.SetText("1,000")
	l.Draw(&ImageCanvas{Target: ebiten.NewImage(128, 32), Font: f})
}
