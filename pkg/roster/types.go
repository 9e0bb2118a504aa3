package roster

import (
	"fmt"
	"strconv"
)

// Kind identifies the category of a student record.
type Kind int

const (
	KindUndergraduate Kind = iota + 1
	KindGraduate
)

// String returns the display label for the kind.
func (k Kind) String() string {
	switch k {
	case KindUndergraduate:
		return "Undergraduate"
	case KindGraduate:
		return "Graduate"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the kind is one of the defined categories.
func (k Kind) IsValid() bool {
	return k == KindUndergraduate || k == KindGraduate
}

// ParseKind maps a menu type selector (1 or 2) to a Kind.
func ParseKind(selector int) (Kind, error) {
	switch selector {
	case 1:
		return KindUndergraduate, nil
	case 2:
		return KindGraduate, nil
	default:
		return 0, fmt.Errorf("invalid type %d: %w", selector, ErrInvalidKind)
	}
}

// StudentRecord is a single student entry. The id, name, and kind are
// fixed at construction; only the grade may change afterwards.
type StudentRecord struct {
	id    int
	name  string
	kind  Kind
	grade float64
	major string
}

// NewStudentRecord creates a student record.
func NewStudentRecord(id int, name string, kind Kind, grade float64, major string) *StudentRecord {
	return &StudentRecord{
		id:    id,
		name:  name,
		kind:  kind,
		grade: grade,
		major: major,
	}
}

// ID returns the student identifier.
func (s *StudentRecord) ID() int {
	return s.id
}

// Name returns the student's full name.
func (s *StudentRecord) Name() string {
	return s.name
}

// Kind returns the student category.
func (s *StudentRecord) Kind() Kind {
	return s.kind
}

// Grade returns the current grade point.
func (s *StudentRecord) Grade() float64 {
	return s.grade
}

// SetGrade updates the grade point.
func (s *StudentRecord) SetGrade(grade float64) {
	s.grade = grade
}

// Major returns the student's major field.
func (s *StudentRecord) Major() string {
	return s.major
}

// String renders the record as a single display line, prefixed with the
// category label.
func (s *StudentRecord) String() string {
	return fmt.Sprintf("%s Student ID: %d, Full Name: %s, Grade: %s, Major: %s",
		s.kind, s.id, s.name, strconv.FormatFloat(s.grade, 'f', -1, 64), s.major)
}

// FindQuery selects a record by name or by id. A non-empty Name wins and
// the ID is ignored; with an empty Name the ID is used. A nil ID marks
// the id criterion as absent.
type FindQuery struct {
	Name string
	ID   *int
}

// Errors
var (
	ErrDuplicateID     = &RosterError{"student id already exists"}
	ErrDuplicateName   = &RosterError{"student name already exists"}
	ErrStudentNotFound = &RosterError{"student not found"}
	ErrInvalidKind     = &RosterError{"invalid student type"}
)

// RosterError represents a roster engine error.
type RosterError struct {
	Message string
}

func (e *RosterError) Error() string {
	return e.Message
}
