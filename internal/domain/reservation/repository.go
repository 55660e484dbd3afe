package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Filter narrows a query. Every set field must match; an empty filter
// returns every reservation.
type Filter struct {
	// Date is a UTC calendar day, YYYY-MM-DD.
	Date      *string
	Status    *Status
	GuestName *string
}

type Repository interface {
	// Upsert replaces the whole document stored under id, creating it
	// when absent.
	Upsert(
		ctx context.Context,
		id string,
		r *models.Reservation,
	) (*models.Reservation, error)

	// GetByID returns nil, nil when no document has the id.
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	// Query returns matching reservations ordered by arrival time.
	Query(
		ctx context.Context,
		f Filter,
	) ([]models.Reservation, error)

	EnsureIndexes(ctx context.Context) error

	Ping(ctx context.Context) error
}
