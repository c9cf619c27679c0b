package bouncy

// Draw paints the steady characters, then the ones animating out, through c.
// While any animation runs it requests another frame; once idle it posts a
// single cleanup pass that reclaims the records of finished exits. Idle
// frames after that post nothing until a new animation is scheduled.
func (l *Label) Draw(c Canvas) {
	baseline := l.baseline()
	style := GlyphStyle{Size: l.textSizePx, Color: l.color}

	l.drawList(c, l.primary, baseline, style)
	l.drawList(c, l.transient, baseline, style)

	if l.anim.running > 0 {
		l.frames.RequestFrame()
	} else if !l.cleanupPosted {
		l.cleanupPosted = true
		l.frames.Post(l.cleanupFn)
	}
}

func (l *Label) drawList(c Canvas, ids []recordID, baseline float64, style GlyphStyle) {
	for _, id := range ids {
		r := l.arena.at(id)
		c.DrawGlyph(r.glyph, r.x, baseline+r.y, style)
	}
}

// baseline centers the glyph box within the layout height.
func (l *Label) baseline() float64 {
	m := l.font.Metrics(l.textSizePx)
	h := l.layoutHeight
	if h <= 0 {
		h = m.Height()
	}
	return (h-m.Height())/2 + m.Ascent
}

// cleanup reclaims the transient records whose animation has completed and
// drops completed animations from the active set. Calling it with nothing to
// reclaim is a no-op.
func (l *Label) cleanup() {
	reclaimed := 0
	l.anim.reclaim(func(id recordID) {
		if l.removeTransient(id) {
			l.releaseRecord(id)
			reclaimed++
		}
	})

	if reclaimed > 0 {
		l.debugCleanup(reclaimed)
		// The exited glyphs were part of the last painted frame.
		l.frames.RequestFrame()
	}
}

// removeTransient deletes id from the transient sequence, keeping order.
func (l *Label) removeTransient(id recordID) bool {
	for i, t := range l.transient {
		if t == id {
			l.transient = append(l.transient[:i], l.transient[i+1:]...)
			return true
		}
	}
	return false
}
