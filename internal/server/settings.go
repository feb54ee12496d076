package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/authorization"
	"github.com/smallbiznis/billpoint/internal/events"
	settingsdomain "github.com/smallbiznis/billpoint/internal/settings/domain"
)

func (s *Server) GetSettings(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectSettings, authorization.ActionSettingsRead)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cfg, err := s.settingsSvc.Load(c.Request.Context(), ownerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

func (s *Server) SaveSettings(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectSettings, authorization.ActionSettingsWrite)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var cfg settingsdomain.Settings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.settingsSvc.Save(c.Request.Context(), ownerID, cfg); err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.AuditLog(c.Request.Context(), &ownerID, "", nil, events.EventSettingsSaved, "settings", nil, map[string]any{
			"print_size":          string(cfg.PrintSize),
			"sms_on_confirm":      cfg.SendSMSOnConfirm,
			"service_charge_rule": len(cfg.ServiceCharges),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": cfg})
}
