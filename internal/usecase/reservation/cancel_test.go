package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
)

func TestCancelIsIdempotent(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	created := s.mustCreate(t, "Test", "2026-05-01T18:00:00Z")

	first, err := s.cancel.Execute(ctx, guest, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), first.Status)

	second, err := s.cancel.Execute(ctx, guest, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), second.Status)

	stored, err := s.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "cancel must not delete the document")
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestCancelOpenToAnyCaller(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	r := s.mustCreate(t, "bob", "2026-05-01T18:00:00Z")
	_, err := s.cancel.Execute(ctx, nil, r.ID)
	assert.NoError(t, err)

	r = s.mustCreate(t, "bob", "2026-05-01T18:00:00Z")
	_, err = s.cancel.Execute(ctx, guest, r.ID)
	assert.NoError(t, err, "a guest may cancel a reservation they do not own")
}

func TestCancelNotFound(t *testing.T) {
	s := newSuite(t)
	_, err := s.cancel.Execute(context.Background(), employee, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
