package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

// ReservationMemoryRepository keeps documents in process memory. It backs
// STORE_DRIVER=memory and the tests of every layer above persistence.
type ReservationMemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]models.Reservation
}

func NewReservationMemoryRepository() *ReservationMemoryRepository {
	return &ReservationMemoryRepository{docs: make(map[string]models.Reservation)}
}

func (r *ReservationMemoryRepository) Upsert(
	_ context.Context,
	id string,
	res *models.Reservation,
) (*models.Reservation, error) {

	doc := *res
	doc.ID = id

	r.mu.Lock()
	r.docs[id] = doc
	r.mu.Unlock()

	return &doc, nil
}

func (r *ReservationMemoryRepository) GetByID(
	_ context.Context,
	id string,
) (*models.Reservation, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *ReservationMemoryRepository) Query(
	_ context.Context,
	f domain.Filter,
) ([]models.Reservation, error) {

	var start, end string
	if f.Date != nil {
		var err error
		start, end, err = timezone.DayBounds(*f.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
	}

	r.mu.RLock()
	out := make([]models.Reservation, 0, len(r.docs))
	for _, doc := range r.docs {
		if f.Date != nil && (doc.ArrivalTime < start || doc.ArrivalTime >= end) {
			continue
		}
		if f.Status != nil && doc.Status != string(*f.Status) {
			continue
		}
		if f.GuestName != nil && doc.GuestName != *f.GuestName {
			continue
		}
		out = append(out, doc)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ArrivalTime == out[j].ArrivalTime {
			return out[i].ID < out[j].ID
		}
		return out[i].ArrivalTime < out[j].ArrivalTime
	})
	return out, nil
}

func (r *ReservationMemoryRepository) EnsureIndexes(context.Context) error {
	return nil
}

func (r *ReservationMemoryRepository) Ping(context.Context) error {
	return nil
}
