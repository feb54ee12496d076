package ownercontext

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type contextKey string

const (
	ownerIDKey    contextKey = "owner_id"
	operatorIDKey contextKey = "operator_id"
	roleKey       contextKey = "operator_role"
)

// WithOwnerID scopes the context to the shop account that owns all data
// touched by the request.
func WithOwnerID(ctx context.Context, ownerID snowflake.ID) context.Context {
	if ownerID == 0 {
		return ctx
	}
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

func OwnerIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	value, ok := ctx.Value(ownerIDKey).(snowflake.ID)
	return value, ok && value != 0
}

func WithOperator(ctx context.Context, operatorID snowflake.ID, role string) context.Context {
	if operatorID != 0 {
		ctx = context.WithValue(ctx, operatorIDKey, operatorID)
	}
	if role != "" {
		ctx = context.WithValue(ctx, roleKey, role)
	}
	return ctx
}

func OperatorIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	value, ok := ctx.Value(operatorIDKey).(snowflake.ID)
	return value, ok && value != 0
}

func RoleFromContext(ctx context.Context) string {
	value, _ := ctx.Value(roleKey).(string)
	return value
}
