package reservation

import "github.com/BruksfildServices01/table-reservations/internal/httperr"

var (
	ErrNotFound       = httperr.NewBusiness(httperr.CodeNotFound, "Reservation not found")
	ErrNotConnected   = httperr.NewBusiness(httperr.CodeNotConnected, "Database not connected")
	ErrMissingFields  = httperr.ErrValidation("Missing required fields")
	ErrInvalidStatus  = httperr.ErrValidation("Invalid status")
	ErrInvalidArrival = httperr.ErrValidation("Invalid arrivalTime")
	ErrInvalidDate    = httperr.ErrValidation("Invalid date filter, expected YYYY-MM-DD")
	ErrInvalidSize    = httperr.ErrValidation("tableSize must be a positive integer")
	ErrEmptyField     = httperr.ErrValidation("Updated fields must not be empty")
)
