package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ListStudentsResult contains the roster in insertion order.
type ListStudentsResult struct {
	Students []*student.Student
}

// IsEmpty reports whether the roster has no students.
func (r *ListStudentsResult) IsEmpty() bool {
	return len(r.Students) == 0
}

// ListStudentsHandler returns every student.
type ListStudentsHandler struct {
	studentRepo student.Repository
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(studentRepo student.Repository) *ListStudentsHandler {
	return &ListStudentsHandler{studentRepo: studentRepo}
}

// Handle executes the query.
func (h *ListStudentsHandler) Handle(ctx context.Context) (*ListStudentsResult, error) {
	students, err := h.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_students: %w", err)
	}
	return &ListStudentsResult{Students: students}, nil
}
