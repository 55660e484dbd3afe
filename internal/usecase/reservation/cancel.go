package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// CancelReservation is open to any caller and never deletes the document.
type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	caller *auth.Identity,
	id string,
) (*models.Reservation, error) {

	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	domain.Cancel(r)

	saved, err := uc.repo.Upsert(ctx, id, r)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(caller, "reservation_cancelled", id, nil))

	return saved, nil
}
