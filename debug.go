package bouncy

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, every transition
// and cleanup pass is logged with per-position counts and pool usage.
func (l *Label) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// SetDebugOutput redirects debug logging. nil restores stderr.
func (l *Label) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.debugOut = w
}

func (l *Label) debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	_, _ = fmt.Fprintf(l.debugOut, "[bouncy] "+format+"\n", args...)
}

// debugTransition logs what a text change did to each position.
func (l *Label) debugTransition(from, to string, st TransitionStats) {
	if !l.debug {
		return
	}
	l.debugf("transition %q -> %q: kept=%d moved=%d replaced=%d inserted=%d removed=%d | animations: %d running",
		from, to, st.Kept, st.Moved, st.Replaced, st.Inserted, st.Removed, l.anim.running)
}

// debugCleanup logs reclaimed records and pool usage.
func (l *Label) debugCleanup(reclaimed int) {
	if !l.debug {
		return
	}
	l.debugf("cleanup: reclaimed %d | pool: %d/%d | live records: %d",
		reclaimed, l.pool.len(), l.pool.capacity(), l.arena.live())
}
