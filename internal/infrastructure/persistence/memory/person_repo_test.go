package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/person"
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func TestPersonRepository_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository()

	for _, name := range []string{"Lucas", "Sofia"} {
		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		p, err := person.NewPerson(person.NewPersonParams{ID: id, Name: name, Age: 30, Height: 1.7})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, person.ID(1), all[0].ID())
	assert.Equal(t, "Sofia", all[1].Name())

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Sofia", got.Name())

	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, shared.ErrPersonNotFound)
}

func TestPersonRepository_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository()

	p, err := person.NewPerson(person.NewPersonParams{ID: 7, Name: "Lucas", Age: 30, Height: 1.7})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	err = repo.Create(ctx, p)
	assert.True(t, shared.IsAlreadyExists(err))

	next, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, person.ID(8), next)
}
