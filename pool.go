package bouncy

// DefaultPoolCapacity is the number of released records a Label keeps for reuse.
const DefaultPoolCapacity = 50

// recordPool is a fixed-capacity LIFO free list of record handles.
type recordPool struct {
	free []recordID
}

func newRecordPool(capacity int) *recordPool {
	if capacity <= 0 {
		panic("bouncy: the pool capacity must be larger than 0")
	}
	return &recordPool{free: make([]recordID, 0, capacity)}
}

// acquire returns the most recently released handle, or false when empty.
func (p *recordPool) acquire() (recordID, bool) {
	n := len(p.free)
	if n == 0 {
		return 0, false
	}
	id := p.free[n-1]
	p.free = p.free[:n-1]
	return id, true
}

// release stores id for reuse. It reports false once the pool is full; the
// caller then owns the record and must discard it.
func (p *recordPool) release(id recordID) bool {
	if len(p.free) == cap(p.free) {
		return false
	}
	p.free = append(p.free, id)
	return true
}

func (p *recordPool) len() int { return len(p.free) }

func (p *recordPool) capacity() int { return cap(p.free) }

// acquireRecord takes a record from the pool, falling back to a fresh one.
func (l *Label) acquireRecord() recordID {
	if id, ok := l.pool.acquire(); ok {
		return id
	}
	return l.arena.alloc()
}

// releaseRecord hands a record back to the pool, discarding it when full.
func (l *Label) releaseRecord(id recordID) {
	if !l.pool.release(id) {
		l.arena.discard(id)
	}
}

// releaseAll releases every record in ids.
func (l *Label) releaseAll(ids []recordID) {
	for _, id := range ids {
		l.releaseRecord(id)
	}
}
