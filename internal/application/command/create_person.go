package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alem-hub/gradebook/internal/domain/person"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// CreatePersonCommand contains the data for a new person.
// The ID is assigned by the repository.
type CreatePersonCommand struct {
	Name          string  `validate:"required"`
	Age           int     `validate:"gt=0"`
	Height        float64 `validate:"gt=0"`
	Gender        string
	CorrelationID string
}

// Validate validates the command.
func (c CreatePersonCommand) Validate() error {
	return validateStruct("create_person", c, fieldErrors{
		"Name":   shared.ErrEmptyPersonName,
		"Age":    shared.ErrInvalidPersonAge,
		"Height": shared.ErrInvalidHeight,
	})
}

// CreatePersonHandler handles the CreatePersonCommand.
type CreatePersonHandler struct {
	personRepo person.Repository
	publisher  shared.EventPublisher
	logger     *slog.Logger
}

// NewCreatePersonHandler creates a new CreatePersonHandler. publisher may be nil.
func NewCreatePersonHandler(personRepo person.Repository, publisher shared.EventPublisher, logger *slog.Logger) *CreatePersonHandler {
	if publisher == nil {
		publisher = shared.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CreatePersonHandler{personRepo: personRepo, publisher: publisher, logger: logger}
}

// Handle executes the create person command and returns the stored person.
func (h *CreatePersonHandler) Handle(ctx context.Context, cmd CreatePersonCommand) (*person.Person, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := h.personRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create_person: failed to allocate id: %w", err)
	}

	p, err := person.NewPerson(person.NewPersonParams{
		ID:     id,
		Name:   cmd.Name,
		Age:    cmd.Age,
		Gender: cmd.Gender,
		Height: cmd.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("create_person: %w", err)
	}

	if err := h.personRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create_person: failed to save: %w", err)
	}

	h.logger.Debug("person created",
		logger.Operation("create_person"),
		logger.PersonID(int(p.ID())),
		"correlation_id", cmd.CorrelationID,
	)

	event := shared.NewPersonRegisteredEvent(int(p.ID()), p.Name(), p.Gender().String())
	event.BaseEvent = event.BaseEvent.WithCorrelationID(cmd.CorrelationID)
	if err := h.publisher.Publish(event); err != nil {
		h.logger.Warn("failed to publish event", "event_type", event.EventType(), logger.Err(err))
	}

	return p, nil
}
