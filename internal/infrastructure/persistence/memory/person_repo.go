package memory

import (
	"context"
	"sync"

	"github.com/alem-hub/gradebook/internal/domain/person"
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// PersonRepository implements person.Repository over an ordered slice.
type PersonRepository struct {
	mu     sync.RWMutex
	people []*person.Person
	lastID person.ID
}

// NewPersonRepository creates an empty PersonRepository.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		people: make([]*person.Person, 0),
	}
}

// NextID reserves and returns the next sequential ID.
func (r *PersonRepository) NextID(ctx context.Context) (person.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	return r.lastID, nil
}

// Create appends a person.
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil {
		return shared.NewDomainError("person", "Create", shared.ErrInvalidEntity, "person is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.people {
		if existing.ID() == p.ID() {
			return shared.NewDomainError("person", "Create", shared.ErrAlreadyExists, "person ID already exists")
		}
	}
	if p.ID() > r.lastID {
		r.lastID = p.ID()
	}
	r.people = append(r.people, p.Clone())
	return nil
}

// GetByID returns the person with the given ID.
func (r *PersonRepository) GetByID(ctx context.Context, id person.ID) (*person.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.people {
		if p.ID() == id {
			return p.Clone(), nil
		}
	}
	return nil, shared.ErrPersonNotFound
}

// GetAll returns every person in insertion order.
func (r *PersonRepository) GetAll(ctx context.Context) ([]*person.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*person.Person, 0, len(r.people))
	for _, p := range r.people {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Count returns the number of stored people.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.people), nil
}

var _ person.Repository = (*PersonRepository)(nil)
