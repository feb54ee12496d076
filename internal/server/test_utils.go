package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type testCleanupRequest struct {
	Prefix string `json:"prefix"`
}

// TestCleanup removes data created by integration test runs. Disabled in
// production.
func (s *Server) TestCleanup(c *gin.Context) {
	if s.cfg.IsProduction() {
		AbortWithError(c, ErrNotFound)
		return
	}

	var req testCleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	prefix := strings.TrimSpace(req.Prefix)
	if prefix == "" {
		AbortWithError(c, newValidationError("prefix", "required", "prefix is required"))
		return
	}

	ctx := c.Request.Context()
	operatorIDs, err := s.loadOperatorIDsByPrefix(ctx, prefix)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := s.deleteOperatorData(ctx, operatorIDs); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) loadOperatorIDsByPrefix(ctx context.Context, prefix string) ([]int64, error) {
	like := strings.TrimSpace(prefix) + "%"
	var operatorIDs []int64
	if err := s.db.WithContext(ctx).
		Table("operators").
		Select("id").
		Where("username LIKE ?", like).
		Scan(&operatorIDs).Error; err != nil {
		return nil, err
	}
	return operatorIDs, nil
}

func (s *Server) deleteOperatorData(ctx context.Context, operatorIDs []int64) error {
	if len(operatorIDs) == 0 {
		return nil
	}
	queries := []string{
		`DELETE FROM sessions WHERE operator_id IN ?`,
		`DELETE FROM operators WHERE id IN ?`,
	}
	for _, query := range queries {
		if err := s.db.WithContext(ctx).Exec(query, operatorIDs).Error; err != nil {
			return err
		}
	}
	return nil
}
