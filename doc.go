// Package bouncy is a single-line text label that animates every change of
// its text one character at a time, in the style of an odometer or a flip
// counter.
//
// When the text changes, the old and new strings are aligned from their last
// character. Characters that differ slide out vertically while their
// replacements slide in from the opposite side, extra leading characters
// slide in or out, and characters present in both strings stay where they
// are, sliding horizontally if their position changed. Going from "99" to
// "199" slides in a leading "1" while both nines keep their glyphs and slide
// one place to the right.
//
// # Quick start
//
//	font, _ := bouncy.LoadTTFFont(goregular.TTF)
//	loop := bouncy.NewLoop()
//	label := bouncy.NewLabel(font,
//		bouncy.WithTextSize(bouncy.UnitPx, 48),
//		bouncy.WithFrameScheduler(loop),
//	)
//	label.SetText("999")
//
//	// later
//	label.SetText("1000")
//
// Each frame the host advances the animations, draws, and ticks the loop:
//
//	func (g *Game) Update() error {
//		g.label.Update(1 / float64(ebiten.TPS()))
//		g.loop.Tick()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.canvas.Target = screen
//		g.label.Draw(g.canvas)
//	}
//
// # Collaborators
//
// A label does not rasterize text itself. It measures glyphs through a [Font]
// ([TTFFont], [BitmapFont], or term.CellFont for terminals) and paints them
// through a [Canvas] ([ImageCanvas] for Ebitengine, term.Grid and
// term.ScreenCanvas for terminals). Frame requests and the deferred cleanup
// pass go through a [FrameScheduler]; [Loop] is a ready-made one.
//
// # Animation
//
// Each character animates for the configured duration (default 450ms) with
// a stagger (default 45ms) between successive positions, rightmost first.
// Interpolation uses [gween] tweens, linear unless another easing is set
// (see [ParseEasing] and [SpringEasing]).
// Changing the text or its size while a transition runs completes the
// running animations first.
//
// Use [Label.SuppressAnimations] to change the text without any transition.
//
// [gween]: https://github.com/tanema/gween
package bouncy
