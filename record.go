package bouncy

// recordID is a handle into a Label's record arena. A handle is listed by at
// most one of the primary sequence, the transient sequence or the pool.
type recordID int32

// glyphRecord is one visible glyph instance. y is the offset from the
// baseline and is only non-zero while a vertical animation is in flight.
type glyphRecord struct {
	glyph string
	x, y  float64
	w     float64 // cached advance width
	live  bool
}

// field returns a pointer to the coordinate driven along axis.
func (r *glyphRecord) field(axis Axis) *float64 {
	if axis == AxisX {
		return &r.x
	}
	return &r.y
}

// arena stores every record a Label has allocated. Slots of records that
// were discarded (rejected by a full pool) are recycled by alloc.
type arena struct {
	records []glyphRecord
	dead    []recordID
}

// alloc returns a fresh, zeroed record.
func (a *arena) alloc() recordID {
	if n := len(a.dead); n > 0 {
		id := a.dead[n-1]
		a.dead = a.dead[:n-1]
		a.records[id] = glyphRecord{live: true}
		return id
	}
	a.records = append(a.records, glyphRecord{live: true})
	return recordID(len(a.records) - 1)
}

// discard drops a record that no list refers to anymore.
func (a *arena) discard(id recordID) {
	a.records[id] = glyphRecord{}
	a.dead = append(a.dead, id)
}

// at returns the record for id. The pointer is only valid until the next alloc.
func (a *arena) at(id recordID) *glyphRecord {
	return &a.records[id]
}

// live counts records that are not discarded.
func (a *arena) live() int {
	return len(a.records) - len(a.dead)
}
