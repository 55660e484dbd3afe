package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ListInput struct {
	Date   *string
	Status *string
}

func (in ListInput) filter() (domain.Filter, error) {
	var f domain.Filter
	if in.Date != nil && *in.Date != "" {
		f.Date = in.Date
	}
	if in.Status != nil && *in.Status != "" {
		s, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Status = &s
	}
	return f, nil
}

// ======================================================
// PUBLIC LIST
// ======================================================

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Reservation, error) {

	f, err := in.filter()
	if err != nil {
		return nil, err
	}
	return uc.repo.Query(ctx, f)
}

// ======================================================
// ADMIN LIST
// ======================================================

type ListAdminReservations struct {
	repo domain.Repository
}

func NewListAdminReservations(repo domain.Repository) *ListAdminReservations {
	return &ListAdminReservations{repo: repo}
}

func (uc *ListAdminReservations) Execute(
	ctx context.Context,
	caller *auth.Identity,
	in ListInput,
) ([]models.Reservation, error) {

	if !caller.IsEmployee() {
		return nil, httperr.ErrUnauthorized("Unauthorized: employee required")
	}

	f, err := in.filter()
	if err != nil {
		return nil, err
	}
	return uc.repo.Query(ctx, f)
}

// ======================================================
// MY RESERVATIONS
// ======================================================

type ListMyReservations struct {
	repo domain.Repository
}

func NewListMyReservations(repo domain.Repository) *ListMyReservations {
	return &ListMyReservations{repo: repo}
}

// Execute scopes guests to reservations whose guestName equals their
// subject. Any other role sees every reservation.
func (uc *ListMyReservations) Execute(
	ctx context.Context,
	caller *auth.Identity,
) ([]models.Reservation, error) {

	if caller == nil {
		return nil, httperr.ErrUnauthorized("Unauthorized: login required")
	}

	var f domain.Filter
	if caller.Role == auth.RoleGuest {
		owner := caller.Subject
		f.GuestName = &owner
	}
	return uc.repo.Query(ctx, f)
}
