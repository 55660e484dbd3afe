package auditlog

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

// ListInput carries raw query values. From and To are YYYY-MM-DD days,
// both inclusive; unparsable days are ignored.
type ListInput struct {
	Action string
	Entity string
	From   string
	To     string
	Page   int
	Limit  int
}

type ListOutput struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// ======================================================
// USE CASE
// ======================================================

type ListAuditLogs struct {
	store audit.Store
}

func NewListAuditLogs(store audit.Store) *ListAuditLogs {
	return &ListAuditLogs{store: store}
}

func (uc *ListAuditLogs) Execute(
	ctx context.Context,
	caller *auth.Identity,
	in ListInput,
) (*ListOutput, error) {

	if !caller.IsEmployee() {
		return nil, httperr.ErrUnauthorized("Unauthorized: employee role required")
	}

	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	q := audit.Query{
		Action: in.Action,
		Entity: in.Entity,
		Page:   page,
		Limit:  limit,
	}
	if in.From != "" {
		if from, err := timezone.ParseDay(in.From); err == nil {
			q.From = &from
		}
	}
	if in.To != "" {
		if to, err := timezone.ParseDay(in.To); err == nil {
			end := to.AddDate(0, 0, 1)
			q.To = &end
		}
	}

	res, err := uc.store.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Page:  page,
		Limit: limit,
		Total: res.Total,
		Logs:  res.Logs,
	}, nil
}
