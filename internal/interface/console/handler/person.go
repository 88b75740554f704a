package handler

import (
	"context"
	"errors"
	"math"

	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/interface/console"
	"github.com/alem-hub/gradebook/internal/interface/console/presenter"
)

// AddPersonHandler runs the add-person dialog.
type AddPersonHandler struct {
	create *command.CreatePersonHandler
}

// NewAddPersonHandler creates a new AddPersonHandler.
func NewAddPersonHandler(create *command.CreatePersonHandler) *AddPersonHandler {
	return &AddPersonHandler{create: create}
}

// Handle asks for name, age, gender and height. Any gender text is accepted;
// unknown values are stored as Other.
func (h *AddPersonHandler) Handle(ctx context.Context, s *console.Session) error {
	name, err := s.PromptNonEmpty(presenter.PromptPersonName)
	if err != nil {
		return err
	}

	age, err := s.PromptIntUntil(presenter.PromptPersonAge, presenter.InvalidAgeFormat, func(n int) string {
		if n <= 0 {
			return presenter.InvalidAgeValue
		}
		return ""
	})
	if err != nil {
		return err
	}

	gender, err := s.Prompt(presenter.PromptPersonGender)
	if err != nil {
		return err
	}

	height, err := readHeight(s)
	if err != nil {
		return err
	}

	_, err = h.create.Handle(ctx, command.CreatePersonCommand{
		Name:          name,
		Age:           age,
		Gender:        gender,
		Height:        height,
		CorrelationID: s.ID,
	})
	return err
}

func readHeight(s *console.Session) (float64, error) {
	for {
		height, err := s.PromptFloat(presenter.PromptPersonHeight)
		if errors.Is(err, console.ErrNotANumber) {
			s.Println(presenter.InvalidHeightFormat)
			continue
		}
		if err != nil {
			return 0, err
		}
		if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
			s.Println(presenter.InvalidHeightValue)
			continue
		}
		return height, nil
	}
}

// ListPersonsHandler prints every person in roster order.
type ListPersonsHandler struct {
	list *query.ListPersonsHandler
}

// NewListPersonsHandler creates a new ListPersonsHandler.
func NewListPersonsHandler(list *query.ListPersonsHandler) *ListPersonsHandler {
	return &ListPersonsHandler{list: list}
}

// Handle implements console.Handler.
func (h *ListPersonsHandler) Handle(ctx context.Context, s *console.Session) error {
	res, err := h.list.Handle(ctx)
	if err != nil {
		return err
	}
	if res.IsEmpty() {
		s.Println(presenter.NoPersons)
		return nil
	}
	for _, p := range res.Persons {
		s.Println(presenter.PersonLine(p))
	}
	return nil
}
