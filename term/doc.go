// Package term renders bouncy labels in a terminal. Positions are measured
// in cells: CellFont reports one cell per narrow glyph and two per wide one,
// and a glyph box one row high.
package term
