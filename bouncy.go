package bouncy

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidDirection is returned when an animation direction other than
// DirectionUpward or DirectionDownward is supplied.
var ErrInvalidDirection = errors.New("bouncy: unsupported animation direction")

// ErrUnknownResource is returned by SetTextResource when the id is not present
// in the given Resources.
var ErrUnknownResource = errors.New("bouncy: unknown string resource")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default text color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA8 returns the color as 8-bit non-premultiplied components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

// NRGBA converts c to an image/color value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	r, g, b, a := c.RGBA8()
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("bouncy: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bouncy: invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Direction selects which way characters travel during a transition.
type Direction int8

const (
	DirectionUpward   Direction = 1  // characters fly from the bottom to the top
	DirectionDownward Direction = -1 // characters fall from the top to the bottom
)

// Valid reports whether d is one of the two recognized directions.
func (d Direction) Valid() bool {
	return d == DirectionUpward || d == DirectionDownward
}

func (d Direction) String() string {
	switch d {
	case DirectionUpward:
		return "upward"
	case DirectionDownward:
		return "downward"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection accepts "upward"/"up" and "downward"/"down", case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upward", "up":
		return DirectionUpward, nil
	case "downward", "down":
		return DirectionDownward, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Axis identifies which coordinate of a character an animation drives.
type Axis uint8

const (
	AxisX Axis = iota // horizontal shift of a kept character
	AxisY             // vertical offset from the baseline
)

// Unit is the unit a text size is expressed in.
type Unit uint8

const (
	UnitPx Unit = iota // raw pixels
	UnitDp             // density-independent pixels (scaled by Density)
	UnitSp             // scaled pixels (scaled by ScaledDensity)
	UnitPt             // points, 1/72 inch
)

// ParseUnit accepts "px", "dp"/"dip", "sp" and "pt".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "px":
		return UnitPx, nil
	case "dp", "dip":
		return UnitDp, nil
	case "sp":
		return UnitSp, nil
	case "pt":
		return UnitPt, nil
	}
	return 0, fmt.Errorf("bouncy: unknown text size unit %q", s)
}

// Density describes the display the label is rendered to.
// A Density of 1 corresponds to a 160 dpi baseline screen.
type Density struct {
	Density       float64 // multiplier for UnitDp
	ScaledDensity float64 // multiplier for UnitSp (Density times the user font scale)
}

// DefaultDensity treats one dp and one sp as one pixel.
var DefaultDensity = Density{Density: 1, ScaledDensity: 1}

// ToPixels converts size in unit to pixels.
func (d Density) ToPixels(unit Unit, size float64) float64 {
	switch unit {
	case UnitDp:
		return size * d.Density
	case UnitSp:
		return size * d.ScaledDensity
	case UnitPt:
		return size * d.Density * 160 / 72
	}
	return size
}
