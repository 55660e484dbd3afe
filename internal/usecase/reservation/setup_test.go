package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

var (
	guest    = &auth.Identity{Subject: "alice", Role: auth.RoleGuest}
	employee = &auth.Identity{Subject: "Admin", Role: auth.RoleEmployee}
)

type suite struct {
	list         *ListReservations
	adminList    *ListAdminReservations
	myList       *ListMyReservations
	get          *GetReservation
	create       *CreateReservation
	update       *UpdateReservation
	cancel       *CancelReservation
	updateStatus *UpdateReservationStatus
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	return newSuiteWithRepo(t, repository.NewReservationMemoryRepository())
}

func newSuiteWithRepo(t *testing.T, repo domain.Repository) *suite {
	t.Helper()
	logger, _ := test.NewNullLogger()
	dispatcher := audit.NewDispatcher(audit.NewLogSink(logger), logger)
	t.Cleanup(dispatcher.Close)

	s := &suite{
		list:         NewListReservations(repo),
		adminList:    NewListAdminReservations(repo),
		myList:       NewListMyReservations(repo),
		get:          NewGetReservation(repo),
		create:       NewCreateReservation(repo, dispatcher),
		update:       NewUpdateReservation(repo, dispatcher),
		cancel:       NewCancelReservation(repo, dispatcher),
		updateStatus: NewUpdateReservationStatus(repo, dispatcher),
	}
	return s
}

func validInput(name, arrival string) CreateInput {
	return CreateInput{
		GuestName:   name,
		Phone:       "1",
		Email:       "a@b.c",
		ArrivalTime: arrival,
		TableSize:   2,
	}
}

func (s *suite) mustCreate(t *testing.T, name, arrival string) *models.Reservation {
	t.Helper()
	r, err := s.create.Execute(context.Background(), nil, validInput(name, arrival))
	require.NoError(t, err)
	return r
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

// brokenRepo fails every call, standing in for a lost store connection.
type brokenRepo struct{}

var errStoreDown = errors.New("connection reset")

func (brokenRepo) Upsert(context.Context, string, *models.Reservation) (*models.Reservation, error) {
	return nil, errStoreDown
}
func (brokenRepo) GetByID(context.Context, string) (*models.Reservation, error) {
	return nil, errStoreDown
}
func (brokenRepo) Query(context.Context, domain.Filter) ([]models.Reservation, error) {
	return nil, errStoreDown
}
func (brokenRepo) EnsureIndexes(context.Context) error { return errStoreDown }
func (brokenRepo) Ping(context.Context) error          { return domain.ErrNotConnected }
