// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STUDENT QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetStudentQuery looks a student up by ID.
type GetStudentQuery struct {
	StudentID int
}

// GetStudentResult contains the found student.
type GetStudentResult struct {
	Student *student.Student
}

// GetStudentHandler handles the GetStudentQuery.
type GetStudentHandler struct {
	studentRepo student.Repository
}

// NewGetStudentHandler creates a new GetStudentHandler.
func NewGetStudentHandler(studentRepo student.Repository) *GetStudentHandler {
	return &GetStudentHandler{studentRepo: studentRepo}
}

// Handle executes the query. A missing student yields shared.ErrStudentNotFound.
func (h *GetStudentHandler) Handle(ctx context.Context, q GetStudentQuery) (*GetStudentResult, error) {
	s, err := h.studentRepo.GetByID(ctx, student.ID(q.StudentID))
	if err != nil {
		return nil, fmt.Errorf("get_student: %w", err)
	}
	return &GetStudentResult{Student: s}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// CHECK STUDENT ID QUERY
// Used by the add-student dialog before it asks for the remaining fields.
// ══════════════════════════════════════════════════════════════════════════════

// CheckStudentIDResult reports whether an ID may be used for a new student.
type CheckStudentIDResult struct {
	// Valid is false for zero or negative IDs.
	Valid bool

	// Taken is true when a student with the ID already exists.
	Taken bool
}

// Available reports whether a new student can use the ID.
func (r CheckStudentIDResult) Available() bool {
	return r.Valid && !r.Taken
}

// CheckStudentIDHandler checks ID availability.
type CheckStudentIDHandler struct {
	studentRepo student.Repository
}

// NewCheckStudentIDHandler creates a new CheckStudentIDHandler.
func NewCheckStudentIDHandler(studentRepo student.Repository) *CheckStudentIDHandler {
	return &CheckStudentIDHandler{studentRepo: studentRepo}
}

// Handle executes the query.
func (h *CheckStudentIDHandler) Handle(ctx context.Context, id int) (CheckStudentIDResult, error) {
	if !student.ID(id).IsValid() {
		return CheckStudentIDResult{}, nil
	}

	taken, err := h.studentRepo.Exists(ctx, student.ID(id))
	if err != nil {
		return CheckStudentIDResult{}, fmt.Errorf("check_student_id: %w", err)
	}
	return CheckStudentIDResult{Valid: true, Taken: taken}, nil
}
