package bouncy

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// animState is the lifecycle of a running animation:
// active -> completed (end value written) -> reclaimed (dropped by cleanup).
type animState uint8

const (
	animActive animState = iota
	animCompleted
	animReclaimed
)

// animRequest describes one per-character animation. For an entering
// animation the record starts at its current value plus delta and moves back
// to the current value; otherwise it moves from the current value by delta.
type animRequest struct {
	rec      recordID
	axis     Axis
	delta    float64
	entering bool
	delay    time.Duration
}

// animation is a running tween bound to one axis of one record. The record
// handle travels with the animation so cleanup never has to look it up.
type animation struct {
	rec   recordID
	axis  Axis
	tween *gween.Tween
	start float64 // scheduler clock at which interpolation begins
	to    float64
	state animState
}

// animator owns the active animation set. There is no global animation
// manager; the owning Label advances it with Update.
type animator struct {
	anims    []animation
	running  int     // animations not yet completed
	clock    float64 // seconds since the set was last empty
	requests int     // total animations ever scheduled

	duration time.Duration
	easing   ease.TweenFunc
}

func newAnimator(duration time.Duration, easing ease.TweenFunc) animator {
	if easing == nil {
		easing = ease.Linear
	}
	return animator{duration: duration, easing: easing}
}

// schedule starts an animation on rec. The record's axis value is set to the
// start value immediately so the first painted frame is already offset.
func (a *animator) schedule(req animRequest, rec *glyphRecord) {
	field := rec.field(req.axis)

	var from, to float64
	if req.entering {
		to = *field
		from = to + req.delta
	} else {
		from = *field
		to = from + req.delta
	}
	*field = from

	a.anims = append(a.anims, animation{
		rec:   req.rec,
		axis:  req.axis,
		tween: gween.New(float32(from), float32(to), float32(a.duration.Seconds()), a.easing),
		start: a.clock + req.delay.Seconds(),
		to:    to,
		state: animActive,
	})
	a.running++
	a.requests++
}

// advance moves the clock by dt seconds and writes interpolated values.
// Animations still inside their start delay are not sampled and keep the
// start value written by schedule, even with a zero duration.
func (a *animator) advance(dt float64, ar *arena) {
	if a.running == 0 {
		return
	}
	a.clock += dt
	for i := range a.anims {
		an := &a.anims[i]
		if an.state != animActive || a.clock < an.start {
			continue
		}
		v, finished := an.tween.Set(float32(a.clock - an.start))
		field := ar.at(an.rec).field(an.axis)
		if finished {
			*field = an.to
			an.state = animCompleted
			a.running--
			continue
		}
		*field = float64(v)
	}
}

// endAll jumps every active animation to its end value and zeroes the
// running count. It returns how many animations were cut short.
func (a *animator) endAll(ar *arena) int {
	ended := 0
	for i := range a.anims {
		an := &a.anims[i]
		if an.state != animActive {
			continue
		}
		*ar.at(an.rec).field(an.axis) = an.to
		an.state = animCompleted
		ended++
	}
	a.running = 0
	return ended
}

// reclaim drops every completed animation from the set, calling fn with the
// record of each. Active animations are kept in order.
func (a *animator) reclaim(fn func(recordID)) {
	kept := a.anims[:0]
	for i := range a.anims {
		an := &a.anims[i]
		if an.state == animActive {
			kept = append(kept, *an)
			continue
		}
		an.state = animReclaimed
		fn(an.rec)
	}
	for i := len(kept); i < len(a.anims); i++ {
		a.anims[i] = animation{}
	}
	a.anims = kept
	if len(a.anims) == 0 {
		a.clock = 0
	}
}
