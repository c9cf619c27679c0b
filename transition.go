package bouncy

import "time"

// TransitionStats summarizes what a text change did to each position.
type TransitionStats struct {
	Kept     int // same character, same position
	Moved    int // same character, shifted horizontally
	Replaced int // different character at an aligned position
	Inserted int // new leading characters
	Removed  int // dropped leading characters
}

// transition diffs next against the primary sequence, aligning both from
// their last character. next is consumed: its records either join the
// primary sequence or go back to the pool.
func (l *Label) transition(next []recordID) TransitionStats {
	var stats TransitionStats

	if len(l.primary) == 0 {
		l.primary = append(l.primary[:0], next...)
		stats.Inserted = len(next)
		return stats
	}
	if len(next) == 0 {
		stats.Removed = len(l.primary)
		l.releaseAll(l.primary)
		l.primary = l.primary[:0]
		return stats
	}

	height := l.font.Metrics(l.textSizePx).Height()
	offset := height * float64(l.direction)
	var delay time.Duration

	i, j := len(l.primary)-1, len(next)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		old, cur := l.primary[i], next[j]
		oldRec, newRec := l.arena.at(old), l.arena.at(cur)

		if oldRec.glyph != newRec.glyph {
			l.transient = append(l.transient, old)
			l.animate(animRequest{rec: old, axis: AxisY, delta: -offset, delay: delay})

			l.primary[i] = cur
			l.animate(animRequest{rec: cur, axis: AxisY, delta: offset, entering: true, delay: delay})
			stats.Replaced++
		} else {
			if oldRec.x != newRec.x {
				l.animate(animRequest{rec: old, axis: AxisX, delta: newRec.x - oldRec.x, delay: delay})
				stats.Moved++
			} else {
				stats.Kept++
			}
			l.releaseRecord(cur)
		}

		delay += l.stagger
	}

	// New text is shorter: the leading records leave without replacement.
	if i >= 0 {
		for k := i; k >= 0; k-- {
			id := l.primary[k]
			l.transient = append(l.transient, id)
			l.animate(animRequest{rec: id, axis: AxisY, delta: -offset, delay: delay})
			stats.Removed++
		}
		l.primary = append(l.primary[:0], l.primary[i+1:]...)
		return stats
	}

	// New text is longer: the leading new records enter at the front.
	if j >= 0 {
		for k := j; k >= 0; k-- {
			l.animate(animRequest{rec: next[k], axis: AxisY, delta: offset, entering: true, delay: delay})
			delay += l.stagger
			stats.Inserted++
		}
		merged := make([]recordID, 0, j+1+len(l.primary))
		merged = append(merged, next[:j+1]...)
		l.primary = append(merged, l.primary...)
	}
	return stats
}

// animate hands a request to the scheduler.
func (l *Label) animate(req animRequest) {
	l.anim.schedule(req, l.arena.at(req.rec))
	l.cleanupPosted = false
}
