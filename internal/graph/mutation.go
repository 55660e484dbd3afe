package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

type guestContactInput struct {
	Phone string
	Email string
}

type guestContactPatch struct {
	Phone *string
	Email *string
}

type createReservationInput struct {
	GuestName    string
	GuestContact guestContactInput
	ArrivalTime  string
	TableSize    int32
}

type updateReservationInput struct {
	GuestName    *string
	GuestContact *guestContactPatch
	ArrivalTime  *string
	TableSize    *int32
}

func (in updateReservationInput) toUseCase() ucReservation.UpdateInput {
	out := ucReservation.UpdateInput{
		GuestName:   in.GuestName,
		ArrivalTime: in.ArrivalTime,
	}
	if in.GuestContact != nil {
		out.Phone = in.GuestContact.Phone
		out.Email = in.GuestContact.Email
	}
	if in.TableSize != nil {
		size := int(*in.TableSize)
		out.TableSize = &size
	}
	return out
}

func (r *Resolver) CreateReservation(ctx context.Context, args struct{ Input createReservationInput }) (*reservationResolver, error) {
	res, err := r.uc.Create.Execute(ctx, auth.FromContext(ctx), ucReservation.CreateInput{
		GuestName:   args.Input.GuestName,
		Phone:       args.Input.GuestContact.Phone,
		Email:       args.Input.GuestContact.Email,
		ArrivalTime: args.Input.ArrivalTime,
		TableSize:   int(args.Input.TableSize),
	})
	if err != nil {
		return nil, r.fail(ctx, "createReservation", err)
	}
	return newReservation(res), nil
}

func (r *Resolver) UpdateReservation(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateReservationInput
}) (*reservationResolver, error) {
	res, err := r.uc.Update.Execute(ctx, auth.FromContext(ctx), string(args.ID), args.Input.toUseCase())
	if err != nil {
		return nil, r.fail(ctx, "updateReservation", err)
	}
	return newReservation(res), nil
}

func (r *Resolver) CancelReservation(ctx context.Context, args struct{ ID graphql.ID }) (*reservationResolver, error) {
	res, err := r.uc.Cancel.Execute(ctx, auth.FromContext(ctx), string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "cancelReservation", err)
	}
	return newReservation(res), nil
}

func (r *Resolver) UpdateReservationStatus(ctx context.Context, args struct {
	ID     graphql.ID
	Status string
}) (*reservationResolver, error) {
	res, err := r.uc.UpdateStatus.Execute(ctx, auth.FromContext(ctx), string(args.ID), args.Status)
	if err != nil {
		return nil, r.fail(ctx, "updateReservationStatus", err)
	}
	return newReservation(res), nil
}
