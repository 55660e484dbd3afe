package reservation

import (
	"strings"

	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// New builds a reservation in its initial status. The arrival time is
// normalized to the stored layout.
func New(id string, guestName string, contact models.GuestContact, arrival string, tableSize int) (*models.Reservation, error) {
	if strings.TrimSpace(guestName) == "" ||
		strings.TrimSpace(contact.Phone) == "" ||
		strings.TrimSpace(contact.Email) == "" ||
		strings.TrimSpace(arrival) == "" ||
		tableSize == 0 {
		return nil, ErrMissingFields
	}
	if tableSize < 0 {
		return nil, ErrInvalidSize
	}

	normalized, err := timezone.Normalize(arrival)
	if err != nil {
		return nil, ErrInvalidArrival
	}

	return &models.Reservation{
		ID:           id,
		GuestName:    guestName,
		GuestContact: contact,
		ArrivalTime:  normalized,
		TableSize:    tableSize,
		Status:       string(InitialStatus()),
	}, nil
}

// Patch lists the fields an update may overwrite. A nil field is absent and
// keeps the stored value.
type Patch struct {
	GuestName   *string
	Phone       *string
	Email       *string
	ArrivalTime *string
	TableSize   *int
}

// Apply validates p and returns the merged document. r is left untouched.
func Apply(r *models.Reservation, p Patch) (*models.Reservation, error) {
	merged := *r

	if p.GuestName != nil {
		if strings.TrimSpace(*p.GuestName) == "" {
			return nil, ErrEmptyField
		}
		merged.GuestName = *p.GuestName
	}
	if p.Phone != nil {
		if strings.TrimSpace(*p.Phone) == "" {
			return nil, ErrEmptyField
		}
		merged.GuestContact.Phone = *p.Phone
	}
	if p.Email != nil {
		if strings.TrimSpace(*p.Email) == "" {
			return nil, ErrEmptyField
		}
		merged.GuestContact.Email = *p.Email
	}
	// an empty arrivalTime is treated as absent
	if p.ArrivalTime != nil && strings.TrimSpace(*p.ArrivalTime) != "" {
		normalized, err := timezone.Normalize(*p.ArrivalTime)
		if err != nil {
			return nil, ErrInvalidArrival
		}
		merged.ArrivalTime = normalized
	}
	if p.TableSize != nil {
		if *p.TableSize <= 0 {
			return nil, ErrInvalidSize
		}
		merged.TableSize = *p.TableSize
	}

	return &merged, nil
}

func Cancel(r *models.Reservation) {
	r.Status = string(StatusCancelled)
}

func ChangeStatus(r *models.Reservation, s Status) error {
	if !s.Valid() {
		return ErrInvalidStatus
	}
	r.Status = string(s)
	return nil
}
