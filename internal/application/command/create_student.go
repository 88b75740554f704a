package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE STUDENT COMMAND
// Adds a student to the roster. ID uniqueness is the caller's job: the
// console dialog re-prompts until query.CheckStudentIDHandler reports a free ID.
// ══════════════════════════════════════════════════════════════════════════════

// CreateStudentCommand contains the data for a new student.
type CreateStudentCommand struct {
	// ID is assigned by the operator and must be positive.
	ID int `validate:"gt=0"`

	// Name is the display name.
	Name string `validate:"required"`

	// Age in years, positive.
	Age int `validate:"gt=0"`

	// Grades are the initial grades. Values outside [0,10] are dropped,
	// they do not fail the command.
	Grades []int

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c CreateStudentCommand) Validate() error {
	return validateStruct("create_student", c, fieldErrors{
		"ID":   shared.ErrInvalidStudentID,
		"Name": shared.ErrEmptyStudentName,
		"Age":  shared.ErrInvalidStudentAge,
	})
}

// CreateStudentResult contains the result of creating a student.
type CreateStudentResult struct {
	// Student is a copy of the stored record.
	Student *student.Student

	// DroppedGrades is how many initial grades were out of range.
	DroppedGrades int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// CreateStudentHandler handles the CreateStudentCommand.
type CreateStudentHandler struct {
	studentRepo student.Repository
	publisher   shared.EventPublisher
	logger      *slog.Logger
}

// NewCreateStudentHandler creates a new CreateStudentHandler.
// publisher may be nil.
func NewCreateStudentHandler(
	studentRepo student.Repository,
	publisher shared.EventPublisher,
	logger *slog.Logger,
) *CreateStudentHandler {
	if publisher == nil {
		publisher = shared.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateStudentHandler{
		studentRepo: studentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle executes the create student command.
func (h *CreateStudentHandler) Handle(ctx context.Context, cmd CreateStudentCommand) (*CreateStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := student.NewStudent(student.NewStudentParams{
		ID:     student.ID(cmd.ID),
		Name:   cmd.Name,
		Age:    student.Age(cmd.Age),
		Grades: cmd.Grades,
	})
	if err != nil {
		return nil, fmt.Errorf("create_student: %w", err)
	}

	if err := h.studentRepo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create_student: failed to save: %w", err)
	}

	dropped := len(cmd.Grades) - s.GradeCount()
	h.logger.Debug("student created",
		logger.Operation("create_student"),
		logger.StudentID(cmd.ID),
		"grades", s.GradeCount(),
		"dropped_grades", dropped,
		"correlation_id", cmd.CorrelationID,
	)

	event := shared.NewStudentRegisteredEvent(cmd.ID, s.Name(), int(s.Age()), s.GradeCount())
	event.BaseEvent = event.BaseEvent.WithCorrelationID(cmd.CorrelationID)
	if err := h.publisher.Publish(event); err != nil {
		h.logger.Warn("failed to publish event", "event_type", event.EventType(), logger.Err(err))
	}

	return &CreateStudentResult{
		Student:       s,
		DroppedGrades: dropped,
	}, nil
}
