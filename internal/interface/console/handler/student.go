// Package handler contains the console menu option handlers.
package handler

import (
	"context"
	"errors"

	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/internal/interface/console"
	"github.com/alem-hub/gradebook/internal/interface/console/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// GradesPerStudent is how many grades the add-student dialog asks for.
const GradesPerStudent = 3

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT HANDLERS
// One type per menu option of the gradebook. They share the application
// handlers and the presenter through StudentDeps.
// ══════════════════════════════════════════════════════════════════════════════

// StudentDeps groups the application handlers used by the student menu.
type StudentDeps struct {
	CreateStudent  *command.CreateStudentHandler
	AddGrade       *command.AddGradeHandler
	GetStudent     *query.GetStudentHandler
	ListStudents   *query.ListStudentsHandler
	CheckApproval  *query.CheckApprovalHandler
	CheckStudentID *query.CheckStudentIDHandler
}

// ─────────────────────────────────────────────────────────────────────────────
// 1. Add student
// ─────────────────────────────────────────────────────────────────────────────

// AddStudentHandler runs the add-student dialog.
type AddStudentHandler struct {
	deps StudentDeps
}

// NewAddStudentHandler creates a new AddStudentHandler.
func NewAddStudentHandler(deps StudentDeps) *AddStudentHandler {
	return &AddStudentHandler{deps: deps}
}

// Handle asks for name, ID, age and three grades, re-prompting on bad input,
// then stores the student.
func (h *AddStudentHandler) Handle(ctx context.Context, s *console.Session) error {
	name, err := s.PromptNonEmpty(presenter.PromptStudentName)
	if err != nil {
		return err
	}

	id, err := h.readFreeID(ctx, s)
	if err != nil {
		return err
	}

	age, err := s.PromptIntUntil(presenter.PromptStudentAge, presenter.InvalidAgeFormat, func(n int) string {
		if !student.Age(n).IsValid() {
			return presenter.InvalidAgeValue
		}
		return ""
	})
	if err != nil {
		return err
	}

	s.Println(presenter.PromptGradesHeader)
	grades := make([]int, 0, GradesPerStudent)
	for i := 1; i <= GradesPerStudent; i++ {
		g, err := s.PromptIntUntil(presenter.GradePrompt(i), presenter.InvalidGrade, func(n int) string {
			if !student.Grade(n).IsValid() {
				return presenter.InvalidGrade
			}
			return ""
		})
		if err != nil {
			return err
		}
		grades = append(grades, g)
	}

	_, err = h.deps.CreateStudent.Handle(ctx, command.CreateStudentCommand{
		ID:            id,
		Name:          name,
		Age:           age,
		Grades:        grades,
		CorrelationID: s.ID,
	})
	return err
}

// readFreeID asks until the ID is a positive number no student uses yet.
func (h *AddStudentHandler) readFreeID(ctx context.Context, s *console.Session) (int, error) {
	var lookupErr error
	id, err := s.PromptIntUntil(presenter.PromptStudentID, presenter.InvalidIDFormat, func(n int) string {
		res, err := h.deps.CheckStudentID.Handle(ctx, n)
		if err != nil {
			lookupErr = err
			return ""
		}
		switch {
		case !res.Valid:
			return presenter.InvalidIDPositive
		case res.Taken:
			return presenter.IDAlreadyExists
		default:
			return ""
		}
	})
	if err != nil {
		return 0, err
	}
	if lookupErr != nil {
		return 0, lookupErr
	}
	return id, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// 2. See students
// ─────────────────────────────────────────────────────────────────────────────

// ListStudentsHandler prints every student in roster order.
type ListStudentsHandler struct {
	deps      StudentDeps
	presenter *presenter.StudentPresenter
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(deps StudentDeps) *ListStudentsHandler {
	return &ListStudentsHandler{deps: deps, presenter: presenter.NewStudentPresenter()}
}

// Handle implements console.Handler.
func (h *ListStudentsHandler) Handle(ctx context.Context, s *console.Session) error {
	res, err := h.deps.ListStudents.Handle(ctx)
	if err != nil {
		return err
	}
	if res.IsEmpty() {
		s.Println(presenter.NoStudents)
		return nil
	}

	for _, st := range res.Students {
		if err := describe(s, h.presenter, st); err != nil {
			return err
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// 3. Add grade
// ─────────────────────────────────────────────────────────────────────────────

// AddGradeHandler appends one grade to an existing student.
type AddGradeHandler struct {
	deps StudentDeps
}

// NewAddGradeHandler creates a new AddGradeHandler.
func NewAddGradeHandler(deps StudentDeps) *AddGradeHandler {
	return &AddGradeHandler{deps: deps}
}

// Handle asks for the student and the grade. An out-of-range grade is
// dropped without a message.
func (h *AddGradeHandler) Handle(ctx context.Context, s *console.Session) error {
	found, err := lookup(ctx, s, h.deps)
	if err != nil || found == nil {
		return err
	}

	grade, err := s.PromptIntUntil(presenter.PromptGrade, presenter.InvalidGradeInput, acceptAny)
	if err != nil {
		return err
	}

	res, err := h.deps.AddGrade.Handle(ctx, command.AddGradeCommand{
		StudentID:     int(found.ID()),
		Grade:         grade,
		CorrelationID: s.ID,
	})
	if err != nil {
		return err
	}
	if !res.Added {
		logger.FromContext(ctx).Debug("grade dropped", logger.StudentID(int(found.ID())), "grade", grade)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// 4. See student info
// ─────────────────────────────────────────────────────────────────────────────

// StudentInfoHandler prints one student.
type StudentInfoHandler struct {
	deps      StudentDeps
	presenter *presenter.StudentPresenter
}

// NewStudentInfoHandler creates a new StudentInfoHandler.
func NewStudentInfoHandler(deps StudentDeps) *StudentInfoHandler {
	return &StudentInfoHandler{deps: deps, presenter: presenter.NewStudentPresenter()}
}

// Handle implements console.Handler.
func (h *StudentInfoHandler) Handle(ctx context.Context, s *console.Session) error {
	found, err := lookup(ctx, s, h.deps)
	if err != nil || found == nil {
		return err
	}
	return describe(s, h.presenter, found)
}

// ─────────────────────────────────────────────────────────────────────────────
// 5. Check if approved
// ─────────────────────────────────────────────────────────────────────────────

// CheckApprovalHandler prints the pass/fail verdict.
type CheckApprovalHandler struct {
	deps      StudentDeps
	presenter *presenter.StudentPresenter
}

// NewCheckApprovalHandler creates a new CheckApprovalHandler.
func NewCheckApprovalHandler(deps StudentDeps) *CheckApprovalHandler {
	return &CheckApprovalHandler{deps: deps, presenter: presenter.NewStudentPresenter()}
}

// Handle implements console.Handler.
func (h *CheckApprovalHandler) Handle(ctx context.Context, s *console.Session) error {
	id, err := readID(s)
	if err != nil {
		return err
	}

	res, err := h.deps.CheckApproval.Handle(ctx, query.CheckApprovalQuery{StudentID: id})
	switch {
	case errors.Is(err, shared.ErrStudentNotFound):
		s.Println(presenter.StudentNotFound)
		return nil
	case errors.Is(err, shared.ErrNoGrades):
		s.Println(presenter.NoGradesYet)
		return nil
	case err != nil:
		return err
	}

	s.Println(h.presenter.Approval(res.Approved, res.Average))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func acceptAny(int) string { return "" }

// readID asks for a student ID until the line is a number.
func readID(s *console.Session) (int, error) {
	return s.PromptIntUntil(presenter.PromptStudentID, presenter.InvalidIDFormat, acceptAny)
}

// lookup reads an ID and fetches the student. A nil student with a nil
// error means "not found" was already printed.
func lookup(ctx context.Context, s *console.Session, deps StudentDeps) (*student.Student, error) {
	id, err := readID(s)
	if err != nil {
		return nil, err
	}

	res, err := deps.GetStudent.Handle(ctx, query.GetStudentQuery{StudentID: id})
	if errors.Is(err, shared.ErrStudentNotFound) {
		s.Println(presenter.StudentNotFound)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res.Student, nil
}

// describe prints one student line. A student without grades still gets
// a line naming them, so a roster listing stays attributable.
func describe(s *console.Session, p *presenter.StudentPresenter, st *student.Student) error {
	line, err := p.Describe(st)
	if errors.Is(err, shared.ErrNoGrades) {
		s.Println(p.NoGrades(st))
		return nil
	}
	if err != nil {
		return err
	}
	s.Println(line)
	return nil
}
