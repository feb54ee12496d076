package authorization

import (
	"context"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Enforcer *casbin.Enforcer
}

type ServiceImpl struct {
	db       *gorm.DB
	log      *zap.Logger
	enforcer *casbin.Enforcer
}

func NewService(p Params) Service {
	return &ServiceImpl{
		db:       p.DB,
		log:      p.Log.Named("authorization.service"),
		enforcer: p.Enforcer,
	}
}

func (s *ServiceImpl) Authorize(ctx context.Context, actor string, ownerID string, object string, action string) error {
	if actor == "" {
		return ErrInvalidActor
	}
	if ownerID == "" {
		return ErrInvalidOwner
	}
	if object == "" {
		return ErrInvalidObject
	}
	if action == "" {
		return ErrInvalidAction
	}
	if actor == "system" {
		return nil
	}

	operatorID, ok := strings.CutPrefix(actor, "operator:")
	if !ok {
		return ErrInvalidActor
	}
	if _, err := strconv.ParseInt(operatorID, 10, 64); err != nil {
		return ErrInvalidActor
	}

	// Membership is resolved against the operators table so a token from one
	// shop can never act on another shop's data, whatever the policy says.
	var role string
	err := s.db.WithContext(ctx).Raw(
		`SELECT role FROM operators WHERE id = ? AND owner_id = ?`,
		operatorID,
		ownerID,
	).Scan(&role).Error
	if err != nil {
		return err
	}
	if role == "" {
		return ErrForbidden
	}

	allowed, err := s.enforcer.Enforce("role:"+strings.ToLower(role), ownerID, object, action)
	if err != nil {
		return err
	}
	if !allowed {
		s.log.Debug("authorization denied",
			zap.String("actor", actor),
			zap.String("owner_id", ownerID),
			zap.String("object", object),
			zap.String("action", action),
		)
		return ErrForbidden
	}
	return nil
}
