package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucAuditLog "github.com/BruksfildServices01/table-reservations/internal/usecase/auditlog"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	list *ucAuditLog.ListAuditLogs
	log  logrus.FieldLogger
}

func NewAuditLogsHandler(list *ucAuditLog.ListAuditLogs, log logrus.FieldLogger) *AuditLogsHandler {
	return &AuditLogsHandler{list: list, log: log}
}

// List answers GET /audit-logs?action=&entity=&from=&to=&page=&limit=.
// Employees only.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ucAuditLog.DefaultLimit)))

	out, err := h.list.Execute(
		c.Request.Context(),
		auth.FromContext(c.Request.Context()),
		ucAuditLog.ListInput{
			Action: c.Query("action"),
			Entity: c.Query("entity"),
			From:   c.Query("from"),
			To:     c.Query("to"),
			Page:   page,
			Limit:  limit,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUnauthorized) {
			httperr.Unauthorized(c, httperr.CodeUnauthorized, err.Error())
			return
		}
		h.log.WithError(err).Error("failed to list audit logs")
		httperr.Internal(c, "audit_list_failed", "failed to list audit logs")
		return
	}

	httpresp.OK(c, out)
}
