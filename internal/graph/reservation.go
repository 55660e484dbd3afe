package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type reservationResolver struct {
	r models.Reservation
}

func newReservation(r *models.Reservation) *reservationResolver {
	if r == nil {
		return nil
	}
	return &reservationResolver{r: *r}
}

func newReservations(rows []models.Reservation) []*reservationResolver {
	out := make([]*reservationResolver, 0, len(rows))
	for i := range rows {
		out = append(out, &reservationResolver{r: rows[i]})
	}
	return out
}

func (r *reservationResolver) ID() graphql.ID {
	return graphql.ID(r.r.ID)
}

func (r *reservationResolver) GuestName() string {
	return r.r.GuestName
}

func (r *reservationResolver) GuestContact() *guestContactResolver {
	return &guestContactResolver{c: r.r.GuestContact}
}

func (r *reservationResolver) ArrivalTime() string {
	return r.r.ArrivalTime
}

func (r *reservationResolver) TableSize() int32 {
	return int32(r.r.TableSize)
}

func (r *reservationResolver) Status() string {
	return r.r.Status
}

type guestContactResolver struct {
	c models.GuestContact
}

func (c *guestContactResolver) Phone() string {
	return c.c.Phone
}

func (c *guestContactResolver) Email() string {
	return c.c.Email
}
