package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// UpdateInput carries only the fields the caller sent; nil means absent.
type UpdateInput struct {
	GuestName   *string
	Phone       *string
	Email       *string
	ArrivalTime *string
	TableSize   *int
}

// UpdateReservation is open to any caller. The merged document replaces the
// stored one; concurrent updates are last-write-wins.
type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	caller *auth.Identity,
	id string,
	in UpdateInput,
) (*models.Reservation, error) {

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	merged, err := domain.Apply(existing, domain.Patch{
		GuestName:   in.GuestName,
		Phone:       in.Phone,
		Email:       in.Email,
		ArrivalTime: in.ArrivalTime,
		TableSize:   in.TableSize,
	})
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.Upsert(ctx, id, merged)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(caller, "reservation_updated", id, nil))

	return saved, nil
}
