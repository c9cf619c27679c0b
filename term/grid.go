package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/phanxgames/bouncy"
)

type cell struct {
	glyph string
	color bouncy.Color
	wide  bool // left half of a two-cell glyph
	cont  bool // right half of a two-cell glyph
}

// Grid is an off-screen cell buffer implementing bouncy.Canvas. A glyph whose
// baseline is at b occupies row round(b)-1; glyphs outside the grid are
// clipped.
type Grid struct {
	width, height int
	cells         []cell
}

// NewGrid returns an empty grid of the given size in cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize changes the grid size and clears it.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.cells = make([]cell, g.width*g.height)
}

// Size returns the grid size in cells.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// DrawGlyph implements bouncy.Canvas. A two-cell glyph that would cross the
// right edge is not drawn, and the cell it starts on is blanked.
func (g *Grid) DrawGlyph(glyph string, x, baseline float64, style bouncy.GlyphStyle) {
	col := int(math.Round(x))
	row := int(math.Round(baseline)) - 1
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	i := row*g.width + col
	g.erase(i)

	wide := runewidth.StringWidth(glyph) == 2
	if wide && col+1 >= g.width {
		return
	}
	g.cells[i] = cell{glyph: glyph, color: style.Color, wide: wide}
	if wide {
		g.erase(i + 1)
		g.cells[i+1] = cell{cont: true}
	}
}

// erase empties cell i together with the other half of a wide glyph it
// belongs to.
func (g *Grid) erase(i int) {
	switch c := g.cells[i]; {
	case c.wide:
		g.cells[i+1] = cell{}
	case c.cont:
		g.cells[i-1] = cell{}
	}
	g.cells[i] = cell{}
}

// At returns the glyph drawn at (col, row), or "" for an empty cell.
func (g *Grid) At(col, row int) string {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return ""
	}
	return g.cells[row*g.width+col].glyph
}

// Lines returns each row as plain text, empty cells rendered as spaces.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		b.Reset()
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			switch {
			case c.cont:
			case c.glyph == "":
				b.WriteByte(' ')
			default:
				b.WriteString(c.glyph)
			}
		}
		lines[row] = b.String()
	}
	return lines
}

// String joins Lines with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Render returns the grid with each glyph colored by its style, on top of
// base. Runs of equal color are rendered together.
func (g *Grid) Render(base lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	for row := 0; row < g.height; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		var runColor bouncy.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(base.Foreground(lipgloss.Color(runColor.Hex())).Render(run.String()))
			run.Reset()
		}
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			switch {
			case c.cont:
				continue
			case c.glyph == "":
				flush()
				out.WriteString(base.Render(" "))
				continue
			}
			if run.Len() > 0 && c.color != runColor {
				flush()
			}
			runColor = c.color
			run.WriteString(c.glyph)
		}
		flush()
	}
	return out.String()
}
