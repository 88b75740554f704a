// Package memory implements the in-process persistence layer.
// Records live in ordered slices for the lifetime of the process.
package memory

import (
	"context"
	"sync"

	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository over an ordered slice.
// Lookups are linear scans; the roster holds tens of records.
// Records are copied on the way in and out so callers never share
// state with the stored slice.
type StudentRepository struct {
	mu       sync.RWMutex
	students []*student.Student
}

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make([]*student.Student, 0),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// CRUD Operations
// ─────────────────────────────────────────────────────────────────────────────

// Create appends a student. Duplicate IDs are not rejected here; the
// caller checks Exists first.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return shared.NewDomainError("student", "Create", shared.ErrInvalidEntity, "student is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = append(r.students, s.Clone())
	return nil
}

// GetByID returns the first student with the given ID.
func (r *StudentRepository) GetByID(ctx context.Context, id student.ID) (*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.students[i].Clone(), nil
	}
	return nil, shared.ErrStudentNotFound
}

// GetAll returns every student in insertion order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s.Clone())
	}
	return out, nil
}

// Update replaces the first stored student with the same ID.
func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return shared.NewDomainError("student", "Update", shared.ErrInvalidEntity, "student is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(s.ID())
	if i < 0 {
		return shared.ErrStudentNotFound
	}
	r.students[i] = s.Clone()
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Existence Checks
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether any student holds the ID.
func (r *StudentRepository) Exists(ctx context.Context, id student.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexOf(id) >= 0, nil
}

// Count returns the number of stored students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.students), nil
}

// indexOf must be called with the lock held.
func (r *StudentRepository) indexOf(id student.ID) int {
	for i, s := range r.students {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

var _ student.Repository = (*StudentRepository)(nil)
