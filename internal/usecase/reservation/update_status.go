package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute is restricted to employees. The role is checked before the status
// value, so a non-employee always gets an authorization error.
func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	caller *auth.Identity,
	id string,
	status string,
) (*models.Reservation, error) {

	if !caller.IsEmployee() {
		return nil, httperr.ErrUnauthorized("Unauthorized: employee role required")
	}

	s, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	previous := r.Status
	if err := domain.ChangeStatus(r, s); err != nil {
		return nil, err
	}

	saved, err := uc.repo.Upsert(ctx, id, r)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(caller, "reservation_status_changed", id, map[string]any{
		"from": previous,
		"to":   string(s),
	}))

	return saved, nil
}
