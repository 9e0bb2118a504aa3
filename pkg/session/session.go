// Package session wraps a roster with per-invocation instrumentation:
// a session id, structured logging, and operation metrics. Behavior is
// a straight pass-through to the roster; errors come back unchanged.
package session

import (
	"time"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/gradecraft/rosterctl/pkg/roster"
)

// Session owns one roster for the lifetime of a CLI invocation.
type Session struct {
	id      string
	roster  *roster.Roster
	logger  *zap.Logger
	metrics *roster.Metrics
}

// New creates a session with a fresh roster and a generated session id.
// A nil logger disables logging.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := ksuid.New().String()
	return &Session{
		id:      id,
		roster:  roster.NewRoster(),
		logger:  logger.With(zap.String("session_id", id)),
		metrics: roster.NewMetrics(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Metrics returns the session's metrics registry.
func (s *Session) Metrics() *roster.Metrics {
	return s.metrics
}

// observe records metrics and logging for one completed operation.
func (s *Session) observe(operation string, start time.Time, err error) {
	elapsed := time.Since(start)
	s.metrics.RecordOperation(operation, elapsed, err)
	s.metrics.SetStudents(s.roster.Size())

	if err != nil {
		s.logger.Debug("roster operation failed",
			zap.String("operation", operation),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return
	}
	s.logger.Debug("roster operation",
		zap.String("operation", operation),
		zap.Duration("elapsed", elapsed),
		zap.Int("students", s.roster.Size()))
}

// AddStudent adds a record to the roster.
func (s *Session) AddStudent(rec *roster.StudentRecord) error {
	start := time.Now()
	err := s.roster.Add(rec)
	s.observe("add", start, err)
	return err
}

// RemoveStudent removes the record with the given id.
func (s *Session) RemoveStudent(id int) error {
	start := time.Now()
	err := s.roster.Remove(id)
	s.observe("remove", start, err)
	return err
}

// FindStudent looks up a record by name or id.
func (s *Session) FindStudent(q roster.FindQuery) (*roster.StudentRecord, error) {
	start := time.Now()
	rec, err := s.roster.Find(q)
	s.observe("find", start, err)
	return rec, err
}

// ListStudents returns an iterator over the roster in insertion order.
func (s *Session) ListStudents() *roster.Iterator {
	start := time.Now()
	it := s.roster.List()
	s.observe("list", start, nil)
	return it
}

// Records returns a snapshot of all records in insertion order.
func (s *Session) Records() []*roster.StudentRecord {
	return s.roster.Records()
}

// Size returns the number of records in the roster.
func (s *Session) Size() int {
	return s.roster.Size()
}

// AverageGrade returns the mean grade, 0.0 for an empty roster.
func (s *Session) AverageGrade() float64 {
	start := time.Now()
	avg := s.roster.AverageGrade()
	s.observe("average", start, nil)
	return avg
}

// TopGrade returns the records tied for the highest grade.
func (s *Session) TopGrade() []*roster.StudentRecord {
	start := time.Now()
	top := s.roster.TopGrade()
	s.observe("top", start, nil)
	return top
}

// BottomGrade returns the records tied for the lowest grade.
func (s *Session) BottomGrade() []*roster.StudentRecord {
	start := time.Now()
	bottom := s.roster.BottomGrade()
	s.observe("bottom", start, nil)
	return bottom
}
