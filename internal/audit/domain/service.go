package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// AuditLog records one action. Actor, IP, and user agent default to the
	// values carried in the request context when the arguments are empty.
	AuditLog(ctx context.Context, ownerID *snowflake.ID, actorType string, actorID *string, action, targetType string, targetID *string, metadata map[string]any) error
	// List returns matching entries, newest first.
	List(ctx context.Context, filter ListFilter) ([]*AuditLog, error)
}
