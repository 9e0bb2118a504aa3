package roster

// Iterator provides streaming access to roster records in insertion
// order. It walks a snapshot, so mutating the roster mid-iteration does
// not affect an iterator already handed out.
type Iterator struct {
	records []*StudentRecord
	pos     int
	current *StudentRecord
}

func newIterator(records []*StudentRecord) *Iterator {
	return &Iterator{records: records}
}

// Next advances the iterator and reports whether a record is available.
func (it *Iterator) Next() bool {
	if it.pos >= len(it.records) {
		it.current = nil
		return false
	}
	it.current = it.records[it.pos]
	it.pos++
	return true
}

// Record returns the record at the current position, or nil before the
// first Next or after exhaustion.
func (it *Iterator) Record() *StudentRecord {
	return it.current
}

// Reset rewinds the iterator to the beginning of its snapshot.
func (it *Iterator) Reset() {
	it.pos = 0
	it.current = nil
}
