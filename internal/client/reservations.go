package client

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
)

const reservationFields = `id guestName guestContact { phone email } arrivalTime tableSize status`

func (c *Client) Reservations(ctx context.Context, role auth.Role, f dto.ReservationFilter) ([]dto.Reservation, error) {
	var out struct {
		Reservations []dto.Reservation `json:"reservations"`
	}
	err := c.Do(ctx, role, `query($filter: ReservationFilter) {
		reservations(filter: $filter) { `+reservationFields+` }
	}`, map[string]any{"filter": f}, &out)
	return out.Reservations, err
}

func (c *Client) AdminReservations(ctx context.Context, f dto.ReservationFilter) ([]dto.Reservation, error) {
	var out struct {
		AdminReservations []dto.Reservation `json:"adminReservations"`
	}
	err := c.Do(ctx, auth.RoleEmployee, `query($filter: ReservationFilter) {
		adminReservations(filter: $filter) { `+reservationFields+` }
	}`, map[string]any{"filter": f}, &out)
	return out.AdminReservations, err
}

func (c *Client) MyReservations(ctx context.Context, role auth.Role) ([]dto.Reservation, error) {
	var out struct {
		MyReservations []dto.Reservation `json:"myReservations"`
	}
	err := c.Do(ctx, role, `{ myReservations { `+reservationFields+` } }`, nil, &out)
	return out.MyReservations, err
}

// Reservation returns nil when the id is unknown.
func (c *Client) Reservation(ctx context.Context, role auth.Role, id string) (*dto.Reservation, error) {
	var out struct {
		Reservation *dto.Reservation `json:"reservation"`
	}
	err := c.Do(ctx, role, `query($id: ID!) {
		reservation(id: $id) { `+reservationFields+` }
	}`, map[string]any{"id": id}, &out)
	return out.Reservation, err
}

func (c *Client) CreateReservation(ctx context.Context, role auth.Role, in dto.CreateReservationInput) (*dto.Reservation, error) {
	var out struct {
		CreateReservation *dto.Reservation `json:"createReservation"`
	}
	err := c.Do(ctx, role, `mutation($input: CreateReservationInput!) {
		createReservation(input: $input) { `+reservationFields+` }
	}`, map[string]any{"input": in}, &out)
	return out.CreateReservation, err
}

func (c *Client) UpdateReservation(ctx context.Context, role auth.Role, id string, in dto.UpdateReservationInput) (*dto.Reservation, error) {
	var out struct {
		UpdateReservation *dto.Reservation `json:"updateReservation"`
	}
	err := c.Do(ctx, role, `mutation($id: ID!, $input: UpdateReservationInput!) {
		updateReservation(id: $id, input: $input) { `+reservationFields+` }
	}`, map[string]any{"id": id, "input": in}, &out)
	return out.UpdateReservation, err
}

func (c *Client) CancelReservation(ctx context.Context, role auth.Role, id string) (*dto.Reservation, error) {
	var out struct {
		CancelReservation *dto.Reservation `json:"cancelReservation"`
	}
	err := c.Do(ctx, role, `mutation($id: ID!) {
		cancelReservation(id: $id) { `+reservationFields+` }
	}`, map[string]any{"id": id}, &out)
	return out.CancelReservation, err
}

// UpdateReservationStatus always sends the employee token.
func (c *Client) UpdateReservationStatus(ctx context.Context, id, status string) (*dto.Reservation, error) {
	var out struct {
		UpdateReservationStatus *dto.Reservation `json:"updateReservationStatus"`
	}
	err := c.Do(ctx, auth.RoleEmployee, `mutation($id: ID!, $status: ReservationStatus!) {
		updateReservationStatus(id: $id, status: $status) { `+reservationFields+` }
	}`, map[string]any{"id": id, "status": status}, &out)
	return out.UpdateReservationStatus, err
}
