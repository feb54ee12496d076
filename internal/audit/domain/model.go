package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ActorType represents who triggered an action.
type ActorType string

const (
	ActorTypeOperator ActorType = "operator"
	ActorTypeSystem   ActorType = "system"
)

// AuditLog captures an immutable record of a shop action.
type AuditLog struct {
	ID         snowflake.ID      `json:"id" gorm:"primaryKey"`
	OwnerID    *snowflake.ID     `json:"ownerUid,omitempty" gorm:"index"`
	ActorType  string            `json:"actorType" gorm:"type:text;not null"`
	ActorID    *string           `json:"actorId,omitempty" gorm:"type:text"`
	Action     string            `json:"action" gorm:"type:text;not null;index"`
	TargetType string            `json:"targetType" gorm:"type:text;not null"`
	TargetID   *string           `json:"targetId,omitempty" gorm:"type:text"`
	Metadata   datatypes.JSONMap `json:"metadata" gorm:"not null"`
	IPAddress  *string           `json:"ipAddress,omitempty" gorm:"type:text"`
	UserAgent  *string           `json:"userAgent,omitempty" gorm:"type:text"`
	CreatedAt  time.Time         `json:"createdAt" gorm:"not null"`
}

// TableName sets the database table name.
func (AuditLog) TableName() string { return "audit_logs" }
