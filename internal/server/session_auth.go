package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/billpoint/internal/observability/context"
	"github.com/smallbiznis/billpoint/internal/ownercontext"
)

// SessionRequired authenticates requests with a bearer session token. Owner
// identity is derived solely from the session record.
func (s *Server) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		operator, err := s.authSvc.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := c.Request.Context()
		ctx = ownercontext.WithOwnerID(ctx, operator.OwnerID)
		ctx = ownercontext.WithOperator(ctx, operator.ID, operator.Role)
		ctx = obscontext.WithOwnerID(ctx, operator.OwnerID.String())
		ctx = obscontext.WithActorID(ctx, "operator:"+operator.ID.String())

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
