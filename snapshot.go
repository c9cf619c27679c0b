package bouncy

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Snapshot saves the label's box, as last drawn onto c, to a PNG in dir and
// returns the file path. The box is MeasureIntrinsicSize placed at the
// canvas origin. The file is named after the latest transition, so a change
// from "999" to "1000" is saved as "999_to_1000.png". Call it from the host's
// Draw after the label has been drawn.
func (l *Label) Snapshot(c *ImageCanvas, dir string) (string, error) {
	if c.Target == nil {
		return "", errors.New("bouncy: snapshot: canvas has no target")
	}
	r := l.snapshotRect(c.X, c.Y).Intersect(c.Target.Bounds())
	if r.Empty() {
		return "", errors.New("bouncy: snapshot: label is outside the target")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("bouncy: snapshot: %w", err)
	}

	box := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	c.Target.SubImage(r).(*ebiten.Image).ReadPixels(box.Pix)

	path := filepath.Join(dir, snapshotName(l.prevText, l.text))
	if err := encodeSnapshot(path, box); err != nil {
		return "", fmt.Errorf("bouncy: snapshot: %w", err)
	}
	return path, nil
}

// snapshotRect returns the pixel rectangle covering the label's intrinsic
// size with its top-left corner at (x, y).
func (l *Label) snapshotRect(x, y float64) image.Rectangle {
	w, h := l.MeasureIntrinsicSize()
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}

// snapshotName builds "<from>_to_<to>.png". Letters and digits are kept,
// other runes become '-', and empty text is written as "blank".
func snapshotName(from, to string) string {
	return snapshotPart(from) + "_to_" + snapshotPart(to) + ".png"
}

func snapshotPart(s string) string {
	if strings.TrimSpace(s) == "" {
		return "blank"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, s)
}

// encodeSnapshot writes the premultiplied pixels of box as a straight-alpha
// PNG. draw converts through the NRGBA color model.
func encodeSnapshot(path string, box *image.RGBA) error {
	out := image.NewNRGBA(box.Bounds())
	draw.Draw(out, out.Bounds(), box, box.Bounds().Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
