package server

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/ownercontext"
)

func (s *Server) authorizeOwnerAction(c *gin.Context, object string, action string) (snowflake.ID, error) {
	if s.authzSvc == nil {
		return 0, ErrForbidden
	}
	ctx := c.Request.Context()
	ownerID, ok := ownercontext.OwnerIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthorized
	}
	operatorID, ok := ownercontext.OperatorIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthorized
	}

	actor := fmt.Sprintf("operator:%s", operatorID.String())
	err := s.authzSvc.Authorize(ctx, actor, ownerID.String(), strings.TrimSpace(object), strings.TrimSpace(action))
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}
