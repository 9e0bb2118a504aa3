package roster

import (
	"fmt"
	"strings"
)

// Roster is an insertion-ordered collection of student records with O(1)
// uniqueness checks on id and case-insensitive name. The ordered slice
// and both index maps are always updated together, so the indexes are
// exactly the projection of the stored records at all times.
//
// The roster is not safe for concurrent use; it is intended to be owned
// by a single caller.
type Roster struct {
	records []*StudentRecord
	byID    map[int]*StudentRecord
	byName  map[string]*StudentRecord // keyed by lowercased name
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		records: make([]*StudentRecord, 0),
		byID:    make(map[int]*StudentRecord),
		byName:  make(map[string]*StudentRecord),
	}
}

// nameKey normalizes a name for case-insensitive index lookups.
func nameKey(name string) string {
	return strings.ToLower(name)
}

// Add appends a record to the roster. It fails with ErrDuplicateID if
// the id is already present and with ErrDuplicateName if the name is
// already present under case-insensitive comparison. On failure the
// roster is left unchanged.
func (r *Roster) Add(rec *StudentRecord) error {
	if _, exists := r.byID[rec.ID()]; exists {
		return fmt.Errorf("student ID %d already exists: %w", rec.ID(), ErrDuplicateID)
	}
	if _, exists := r.byName[nameKey(rec.Name())]; exists {
		return fmt.Errorf("student name %q already exists: %w", rec.Name(), ErrDuplicateName)
	}

	r.records = append(r.records, rec)
	r.byID[rec.ID()] = rec
	r.byName[nameKey(rec.Name())] = rec
	return nil
}

// Remove deletes the record with the given id and drops it from both
// indexes. It fails with ErrStudentNotFound if no record has that id.
func (r *Roster) Remove(id int) error {
	rec, exists := r.byID[id]
	if !exists {
		return fmt.Errorf("student with ID %d not found: %w", id, ErrStudentNotFound)
	}

	for i, candidate := range r.records {
		if candidate == rec {
			r.records = append(r.records[:i], r.records[i+1:]...)
			break
		}
	}
	delete(r.byID, id)
	delete(r.byName, nameKey(rec.Name()))
	return nil
}

// Find looks up a record by the query's name or id. A query with neither
// criterion matches nothing.
func (r *Roster) Find(q FindQuery) (*StudentRecord, error) {
	if q.Name != "" {
		if rec, exists := r.byName[nameKey(q.Name)]; exists {
			return rec, nil
		}
		return nil, fmt.Errorf("student %q not found: %w", q.Name, ErrStudentNotFound)
	}
	if q.ID != nil {
		if rec, exists := r.byID[*q.ID]; exists {
			return rec, nil
		}
		return nil, fmt.Errorf("student with ID %d not found: %w", *q.ID, ErrStudentNotFound)
	}
	return nil, fmt.Errorf("no search criteria given: %w", ErrStudentNotFound)
}

// Contains reports whether a record with the given id is present.
func (r *Roster) Contains(id int) bool {
	_, exists := r.byID[id]
	return exists
}

// Size returns the number of records in the roster.
func (r *Roster) Size() int {
	return len(r.records)
}

// Records returns a snapshot of all records in insertion order.
func (r *Roster) Records() []*StudentRecord {
	out := make([]*StudentRecord, len(r.records))
	copy(out, r.records)
	return out
}

// List returns an iterator over the records in insertion order. Each
// call produces a fresh iterator over a snapshot of the current state.
func (r *Roster) List() *Iterator {
	return newIterator(r.Records())
}

// AverageGrade returns the arithmetic mean of all grades, or 0.0 for an
// empty roster.
func (r *Roster) AverageGrade() float64 {
	if len(r.records) == 0 {
		return 0.0
	}
	var sum float64
	for _, rec := range r.records {
		sum += rec.Grade()
	}
	return sum / float64(len(r.records))
}

// TopGrade returns every record whose grade equals the maximum grade in
// the roster, in insertion order. Empty roster yields an empty slice.
func (r *Roster) TopGrade() []*StudentRecord {
	if len(r.records) == 0 {
		return nil
	}
	max := r.records[0].Grade()
	for _, rec := range r.records[1:] {
		if rec.Grade() > max {
			max = rec.Grade()
		}
	}
	return r.withGrade(max)
}

// BottomGrade returns every record whose grade equals the minimum grade
// in the roster, in insertion order. Empty roster yields an empty slice.
func (r *Roster) BottomGrade() []*StudentRecord {
	if len(r.records) == 0 {
		return nil
	}
	min := r.records[0].Grade()
	for _, rec := range r.records[1:] {
		if rec.Grade() < min {
			min = rec.Grade()
		}
	}
	return r.withGrade(min)
}

// withGrade collects records matching the grade exactly, preserving
// insertion order. Ties all come back, not just the first hit.
func (r *Roster) withGrade(grade float64) []*StudentRecord {
	var matches []*StudentRecord
	for _, rec := range r.records {
		if rec.Grade() == grade {
			matches = append(matches, rec)
		}
	}
	return matches
}
