package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/smallbiznis/billpoint/internal/audit/domain"
	"github.com/smallbiznis/billpoint/internal/authorization"
)

// ListAuditLogs returns the owner's audit trail, newest first. Admin only via
// the audit.view capability.
func (s *Server) ListAuditLogs(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectAudit, authorization.ActionAuditView)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if s.auditSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	var query struct {
		Action     string `form:"action"`
		TargetType string `form:"targetType"`
		TargetID   string `form:"targetId"`
		Start      string `form:"start"`
		End        string `form:"end"`
		Limit      int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	filter := auditdomain.ListFilter{
		OwnerID:    ownerID,
		Action:     strings.TrimSpace(query.Action),
		TargetType: strings.TrimSpace(query.TargetType),
		TargetID:   strings.TrimSpace(query.TargetID),
		Limit:      query.Limit,
	}
	if query.Start != "" {
		start, err := time.ParseInLocation("2006-01-02", query.Start, time.Local)
		if err != nil {
			AbortWithError(c, newValidationError("start", "invalid_start", "start must be YYYY-MM-DD"))
			return
		}
		filter.StartAt = &start
	}
	if query.End != "" {
		end, err := time.ParseInLocation("2006-01-02", query.End, time.Local)
		if err != nil {
			AbortWithError(c, newValidationError("end", "invalid_end", "end must be YYYY-MM-DD"))
			return
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndAt = &end
	}

	entries, err := s.auditSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
