package dto

// Reservation is the wire shape of a reservation as returned by the API.
type Reservation struct {
	ID           string       `json:"id"`
	GuestName    string       `json:"guestName"`
	GuestContact GuestContact `json:"guestContact"`
	ArrivalTime  string       `json:"arrivalTime"`
	TableSize    int          `json:"tableSize"`
	Status       string       `json:"status"`
}

type GuestContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CreateReservationInput struct {
	GuestName    string       `json:"guestName"`
	GuestContact GuestContact `json:"guestContact"`
	ArrivalTime  string       `json:"arrivalTime"`
	TableSize    int          `json:"tableSize"`
}

// UpdateReservationInput omits nil fields from the request so they keep
// their stored value.
type UpdateReservationInput struct {
	GuestName    *string            `json:"guestName,omitempty"`
	GuestContact *GuestContactPatch `json:"guestContact,omitempty"`
	ArrivalTime  *string            `json:"arrivalTime,omitempty"`
	TableSize    *int               `json:"tableSize,omitempty"`
}

type GuestContactPatch struct {
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type ReservationFilter struct {
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}
