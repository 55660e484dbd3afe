package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

// Execute returns nil, nil when the id is unknown.
func (uc *GetReservation) Execute(ctx context.Context, id string) (*models.Reservation, error) {
	return uc.repo.GetByID(ctx, id)
}
