package audit

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Sink persists audit entries.
type Sink interface {
	Write(ctx context.Context, entry models.AuditLog) error
}

// LogSink writes entries to the process log. Used when no document store
// is configured.
type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, entry models.AuditLog) error {
	s.log.WithFields(logrus.Fields{
		"actor":     entry.Actor,
		"role":      entry.Role,
		"action":    entry.Action,
		"entity":    entry.Entity,
		"entity_id": entry.EntityID,
		"metadata":  entry.Metadata,
	}).Info("audit")
	return nil
}

// MultiSink writes every entry to each sink in order and reports the first
// failure.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, entry models.AuditLog) error {
	var first error
	for _, s := range m {
		if err := s.Write(ctx, entry); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func toEntry(ev Event, now time.Time) models.AuditLog {
	return models.AuditLog{
		Actor:     ev.Actor,
		Role:      ev.Role,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  ev.Metadata,
		CreatedAt: now,
	}
}
