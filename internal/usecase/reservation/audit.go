package reservation

import (
	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
)

const entityReservation = "reservation"

func auditEvent(caller *auth.Identity, action, id string, metadata map[string]any) audit.Event {
	ev := audit.Event{
		Action:   action,
		Entity:   entityReservation,
		EntityID: id,
		Metadata: metadata,
	}
	if caller != nil {
		ev.Actor = caller.Subject
		ev.Role = string(caller.Role)
	}
	return ev
}
