package bouncy

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func newTestArena(n int) *arena {
	ar := &arena{}
	for i := 0; i < n; i++ {
		ar.alloc()
	}
	return ar
}

func TestAnimator_LinearMidpoint(t *testing.T) {
	ar := newTestArena(1)
	a := newAnimator(450*time.Millisecond, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisY, delta: -10}, ar.at(0))

	a.advance(0.225, ar)

	if y := ar.at(0).y; math.Abs(y-(-5)) > 1e-3 {
		t.Errorf("y at half duration = %v, want ~-5", y)
	}
	if a.running != 1 {
		t.Errorf("running = %d, want 1", a.running)
	}
}

func TestAnimator_EnteringStartsOffset(t *testing.T) {
	ar := newTestArena(1)
	ar.at(0).x = 20
	a := newAnimator(time.Second, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisX, delta: 8, entering: true}, ar.at(0))

	if x := ar.at(0).x; x != 28 {
		t.Fatalf("x after schedule = %v, want 28", x)
	}
	a.advance(2, ar)
	if x := ar.at(0).x; x != 20 {
		t.Errorf("x after completion = %v, want 20", x)
	}
}

func TestAnimator_DelayHoldsStartValue(t *testing.T) {
	ar := newTestArena(1)
	a := newAnimator(100*time.Millisecond, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisY, delta: 10, delay: 100 * time.Millisecond}, ar.at(0))

	a.advance(0.05, ar)
	if y := ar.at(0).y; y != 0 {
		t.Errorf("y inside delay = %v, want 0", y)
	}
	a.advance(0.1, ar)
	if y := ar.at(0).y; math.Abs(y-5) > 1e-3 {
		t.Errorf("y halfway after delay = %v, want ~5", y)
	}
	a.advance(0.1, ar)
	if y := ar.at(0).y; y != 10 {
		t.Errorf("y after completion = %v, want 10", y)
	}
	if a.running != 0 {
		t.Errorf("running = %d, want 0", a.running)
	}
}

func TestAnimator_EndAllWritesEndValues(t *testing.T) {
	ar := newTestArena(2)
	a := newAnimator(time.Second, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisY, delta: -10}, ar.at(0))
	a.schedule(animRequest{rec: 1, axis: AxisY, delta: 10, entering: true}, ar.at(1))
	a.advance(0.3, ar)

	if n := a.endAll(ar); n != 2 {
		t.Fatalf("endAll = %d, want 2", n)
	}
	if ar.at(0).y != -10 || ar.at(1).y != 0 {
		t.Errorf("y = %v, %v, want -10, 0", ar.at(0).y, ar.at(1).y)
	}
	if a.running != 0 {
		t.Errorf("running = %d, want 0", a.running)
	}
	if n := a.endAll(ar); n != 0 {
		t.Errorf("second endAll = %d, want 0", n)
	}
}

func TestAnimator_ReclaimKeepsActive(t *testing.T) {
	ar := newTestArena(2)
	a := newAnimator(100*time.Millisecond, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisY, delta: 1}, ar.at(0))
	a.schedule(animRequest{rec: 1, axis: AxisY, delta: 1, delay: time.Second}, ar.at(1))
	a.advance(0.2, ar)

	var got []recordID
	a.reclaim(func(id recordID) { got = append(got, id) })

	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("reclaimed %v, want [0]", got)
	}
	if len(a.anims) != 1 || a.anims[0].rec != 1 {
		t.Fatalf("remaining animations = %+v, want record 1", a.anims)
	}
	if a.clock == 0 {
		t.Error("clock reset while animations remain")
	}

	a.endAll(ar)
	a.reclaim(func(recordID) {})
	if len(a.anims) != 0 || a.clock != 0 {
		t.Errorf("after final reclaim: anims = %d, clock = %v", len(a.anims), a.clock)
	}
}

func TestAnimator_ZeroDurationCompletesOnFirstAdvance(t *testing.T) {
	ar := newTestArena(1)
	a := newAnimator(0, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisY, delta: 4}, ar.at(0))

	a.advance(0, ar)
	if y := ar.at(0).y; y != 4 {
		t.Errorf("y = %v, want 4", y)
	}
	if a.running != 0 {
		t.Errorf("running = %d, want 0", a.running)
	}
}

func TestAnimator_ZeroDurationWaitsForDelay(t *testing.T) {
	ar := newTestArena(2)
	a := newAnimator(0, ease.Linear)
	a.schedule(animRequest{rec: 0, axis: AxisY, delta: 4}, ar.at(0))
	a.schedule(animRequest{rec: 1, axis: AxisY, delta: 4, delay: 100 * time.Millisecond}, ar.at(1))

	a.advance(0.001, ar)
	if a.running != 1 {
		t.Fatalf("running = %d, want 1", a.running)
	}
	if y := ar.at(1).y; y != 0 {
		t.Errorf("delayed y = %v, want 0", y)
	}

	a.advance(0.1, ar)
	if a.running != 0 || ar.at(1).y != 4 {
		t.Errorf("running = %d, y = %v, want 0 and 4", a.running, ar.at(1).y)
	}
}

func TestAnimator_AdvanceIdleIsNoop(t *testing.T) {
	a := newAnimator(time.Second, nil)
	a.advance(1, newTestArena(0))
	if a.clock != 0 {
		t.Errorf("clock = %v, want 0", a.clock)
	}
}
