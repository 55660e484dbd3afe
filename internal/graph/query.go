package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

type reservationFilter struct {
	Date   *string
	Status *string
}

// listArgs accepts the filter both nested and as top-level arguments; the
// nested value wins when both are sent.
type listArgs struct {
	Filter *reservationFilter
	Date   *string
	Status *string
}

func (a listArgs) input() ucReservation.ListInput {
	in := ucReservation.ListInput{Date: a.Date, Status: a.Status}
	if a.Filter != nil {
		if a.Filter.Date != nil {
			in.Date = a.Filter.Date
		}
		if a.Filter.Status != nil {
			in.Status = a.Filter.Status
		}
	}
	return in
}

func (r *Resolver) Reservations(ctx context.Context, args listArgs) ([]*reservationResolver, error) {
	rows, err := r.uc.List.Execute(ctx, args.input())
	if err != nil {
		return nil, r.fail(ctx, "reservations", err)
	}
	return newReservations(rows), nil
}

func (r *Resolver) AdminReservations(ctx context.Context, args listArgs) ([]*reservationResolver, error) {
	rows, err := r.uc.AdminList.Execute(ctx, auth.FromContext(ctx), args.input())
	if err != nil {
		return nil, r.fail(ctx, "adminReservations", err)
	}
	return newReservations(rows), nil
}

func (r *Resolver) MyReservations(ctx context.Context) ([]*reservationResolver, error) {
	rows, err := r.uc.MyList.Execute(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, r.fail(ctx, "myReservations", err)
	}
	return newReservations(rows), nil
}

func (r *Resolver) Reservation(ctx context.Context, args struct{ ID graphql.ID }) (*reservationResolver, error) {
	res, err := r.uc.Get.Execute(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "reservation", err)
	}
	return newReservation(res), nil
}
