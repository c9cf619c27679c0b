package bouncy

// FrameScheduler is the per-label hook into the host's frame clock.
type FrameScheduler interface {
	// RequestFrame asks for one more frame to be drawn.
	RequestFrame()
	// Post runs fn once on the frame thread, after the current draw pass.
	Post(fn func())
}

// Loop is a minimal FrameScheduler for hosts that tick every frame, such as
// an Ebitengine game or a terminal event loop. Each label or group of labels
// owns its own Loop.
type Loop struct {
	posted  []func()
	running []func()
	frame   bool
}

// NewLoop returns an idle loop.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame implements FrameScheduler.
func (lp *Loop) RequestFrame() {
	lp.frame = true
}

// Post implements FrameScheduler.
func (lp *Loop) Post(fn func()) {
	lp.posted = append(lp.posted, fn)
}

// Pending reports the number of posted callbacks not yet run.
func (lp *Loop) Pending() int {
	return len(lp.posted)
}

// Tick runs the callbacks posted before the call and reports whether a frame
// was requested since the previous Tick. Callbacks posted while ticking run
// on the next Tick.
func (lp *Loop) Tick() bool {
	lp.running, lp.posted = lp.posted, lp.running[:0]
	for i, fn := range lp.running {
		fn()
		lp.running[i] = nil
	}
	lp.running = lp.running[:0]

	frame := lp.frame
	lp.frame = false
	return frame
}
