package graph

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

type UseCases struct {
	List         *ucReservation.ListReservations
	AdminList    *ucReservation.ListAdminReservations
	MyList       *ucReservation.ListMyReservations
	Get          *ucReservation.GetReservation
	Create       *ucReservation.CreateReservation
	Update       *ucReservation.UpdateReservation
	Cancel       *ucReservation.CancelReservation
	UpdateStatus *ucReservation.UpdateReservationStatus
}

// Resolver is the root resolver for both Query and Mutation. The caller
// identity is read from the request context on every call.
type Resolver struct {
	uc  UseCases
	log logrus.FieldLogger
}

func NewResolver(uc UseCases, log logrus.FieldLogger) *Resolver {
	return &Resolver{uc: uc, log: log}
}

// fail logs err and hands it back unchanged; the caller sees the message
// verbatim.
func (r *Resolver) fail(ctx context.Context, op string, err error) error {
	entry := r.log.WithError(err).WithField("operation", op)
	if caller := auth.FromContext(ctx); caller != nil {
		entry = entry.WithFields(logrus.Fields{
			"subject": caller.Subject,
			"role":    caller.Role,
		})
	}
	if code := httperr.CodeOf(err); code != "" {
		entry.WithField("code", code).Warn("operation failed")
	} else {
		entry.Error("operation failed")
	}
	return err
}
