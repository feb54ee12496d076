package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/events"
	"github.com/smallbiznis/billpoint/internal/ownercontext"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

func (s *Server) Login(c *gin.Context) {
	if !s.loginLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, operator, err := s.authSvc.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		ownerID := operator.OwnerID
		actorID := "operator:" + operator.ID.String()
		targetID := operator.ID.String()
		_ = s.auditSvc.AuditLog(c.Request.Context(), &ownerID, "operator", &actorID, events.EventOperatorLogin, "operator", &targetID, map[string]any{
			"username": operator.Username,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Username:  operator.Username,
		Role:      operator.Role,
	}})
}

func (s *Server) Logout(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.Fields(header)
	if len(parts) != 2 {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	if err := s.authSvc.Logout(c.Request.Context(), parts[1]); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) CurrentOperator(c *gin.Context) {
	ctx := c.Request.Context()
	operatorID, ok := ownercontext.OperatorIDFromContext(ctx)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	ownerID, _ := ownercontext.OwnerIDFromContext(ctx)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"operatorId": operatorID.String(),
		"ownerUid":   ownerID.String(),
		"role":       ownercontext.RoleFromContext(ctx),
	}})
}
