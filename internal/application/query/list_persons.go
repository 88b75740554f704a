package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/person"
)

// ListPersonsResult contains the person roster in insertion order.
type ListPersonsResult struct {
	Persons []*person.Person
}

// IsEmpty reports whether the roster has no persons.
func (r *ListPersonsResult) IsEmpty() bool {
	return len(r.Persons) == 0
}

// ListPersonsHandler returns every person.
type ListPersonsHandler struct {
	personRepo person.Repository
}

// NewListPersonsHandler creates a new ListPersonsHandler.
func NewListPersonsHandler(personRepo person.Repository) *ListPersonsHandler {
	return &ListPersonsHandler{personRepo: personRepo}
}

// Handle executes the query.
func (h *ListPersonsHandler) Handle(ctx context.Context) (*ListPersonsResult, error) {
	persons, err := h.personRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_persons: %w", err)
	}
	return &ListPersonsResult{Persons: persons}, nil
}
