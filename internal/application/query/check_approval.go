package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHECK APPROVAL QUERY
// Returns the average together with the student's own pass/fail verdict.
// ══════════════════════════════════════════════════════════════════════════════

// CheckApprovalQuery asks whether a student passes.
type CheckApprovalQuery struct {
	StudentID int
}

// CheckApprovalResult contains the verdict.
type CheckApprovalResult struct {
	Student  *student.Student
	Average  float64
	Approved bool
}

// CheckApprovalHandler handles the CheckApprovalQuery.
type CheckApprovalHandler struct {
	studentRepo student.Repository
}

// NewCheckApprovalHandler creates a new CheckApprovalHandler.
func NewCheckApprovalHandler(studentRepo student.Repository) *CheckApprovalHandler {
	return &CheckApprovalHandler{studentRepo: studentRepo}
}

// Handle executes the query.
// Returns shared.ErrStudentNotFound or shared.ErrNoGrades; the student is
// still included in the result for the latter.
func (h *CheckApprovalHandler) Handle(ctx context.Context, q CheckApprovalQuery) (*CheckApprovalResult, error) {
	s, err := h.studentRepo.GetByID(ctx, student.ID(q.StudentID))
	if err != nil {
		return nil, fmt.Errorf("check_approval: %w", err)
	}

	approved, err := s.IsApproved()
	if err != nil {
		return &CheckApprovalResult{Student: s}, fmt.Errorf("check_approval: %w", err)
	}
	avg, err := s.Average()
	if err != nil {
		return &CheckApprovalResult{Student: s}, fmt.Errorf("check_approval: %w", err)
	}

	return &CheckApprovalResult{
		Student:  s,
		Average:  avg,
		Approved: approved,
	}, nil
}
