package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	GuestName   string
	Phone       string
	Email       string
	ArrivalTime string
	TableSize   int
}

// ======================================================
// USE CASE
// ======================================================

// CreateReservation accepts any caller, anonymous included. No capacity or
// overlap check is made: any number of reservations may share a slot.
type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	newID func() string
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		newID: uuid.NewString,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	caller *auth.Identity,
	in CreateInput,
) (*models.Reservation, error) {

	r, err := domain.New(
		uc.newID(),
		in.GuestName,
		models.GuestContact{Phone: in.Phone, Email: in.Email},
		in.ArrivalTime,
		in.TableSize,
	)
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.Upsert(ctx, r.ID, r)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(caller, "reservation_created", saved.ID, map[string]any{
		"arrivalTime": saved.ArrivalTime,
		"tableSize":   saved.TableSize,
	}))

	return saved, nil
}
