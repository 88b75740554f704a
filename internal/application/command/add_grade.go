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
// ADD GRADE COMMAND
// Appends one grade to an existing student. An out-of-range grade is not an
// error: the result reports Added=false and the roster is left untouched.
// ══════════════════════════════════════════════════════════════════════════════

// AddGradeCommand contains the data to add a grade.
type AddGradeCommand struct {
	StudentID     int `validate:"gt=0"`
	Grade         int
	CorrelationID string
}

// Validate validates the command. The grade itself is checked by the entity.
func (c AddGradeCommand) Validate() error {
	return validateStruct("add_grade", c, fieldErrors{
		"StudentID": shared.ErrInvalidStudentID,
	})
}

// AddGradeResult contains the result of adding a grade.
type AddGradeResult struct {
	// Added is false when the grade was out of range and dropped.
	Added bool

	// Student is the record after the operation.
	Student *student.Student
}

// AddGradeHandler handles the AddGradeCommand.
type AddGradeHandler struct {
	studentRepo student.Repository
	publisher   shared.EventPublisher
	logger      *slog.Logger
}

// NewAddGradeHandler creates a new AddGradeHandler. publisher may be nil.
func NewAddGradeHandler(
	studentRepo student.Repository,
	publisher shared.EventPublisher,
	logger *slog.Logger,
) *AddGradeHandler {
	if publisher == nil {
		publisher = shared.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AddGradeHandler{
		studentRepo: studentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle executes the add grade command.
func (h *AddGradeHandler) Handle(ctx context.Context, cmd AddGradeCommand) (*AddGradeResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := h.studentRepo.GetByID(ctx, student.ID(cmd.StudentID))
	if err != nil {
		return nil, fmt.Errorf("add_grade: %w", err)
	}

	var event shared.Event
	added := s.AddGrade(student.Grade(cmd.Grade))
	if added {
		if err := h.studentRepo.Update(ctx, s); err != nil {
			return nil, fmt.Errorf("add_grade: failed to save: %w", err)
		}
		e := shared.NewGradeAddedEvent(cmd.StudentID, cmd.Grade, s.GradeCount())
		e.BaseEvent = e.BaseEvent.WithCorrelationID(cmd.CorrelationID)
		event = e
	} else {
		h.logger.Debug("grade out of range dropped",
			logger.Operation("add_grade"),
			logger.StudentID(cmd.StudentID),
			"grade", cmd.Grade,
			"correlation_id", cmd.CorrelationID,
		)
		e := shared.NewGradeRejectedEvent(cmd.StudentID, cmd.Grade)
		e.BaseEvent = e.BaseEvent.WithCorrelationID(cmd.CorrelationID)
		event = e
	}

	if err := h.publisher.Publish(event); err != nil {
		h.logger.Warn("failed to publish event", "event_type", event.EventType(), logger.Err(err))
	}

	return &AddGradeResult{
		Added:   added,
		Student: s,
	}, nil
}
