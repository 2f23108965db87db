// Package auditrepo persists append-only audit entries written by command
// handlers alongside the state changes they describe.
package auditrepo

import (
	"context"
	"time"

	"gooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// AuditEntryDTO represents the database structure for audit records.
// Rows are insert-only.
type AuditEntryDTO struct {
	ID         uint   `gorm:"primaryKey"`
	ActorID    string `gorm:"index"`
	EntityType string `gorm:"index:idx_audit_entity"`
	EntityID   string `gorm:"index:idx_audit_entity"`
	EntityRepr string
	Action     int
	Message    string
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit records.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// GormAuditLog implements AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append inserts one audit record.
func (l *GormAuditLog) Append(ctx context.Context, entry ports.AuditEntry) error {
	dto := AuditEntryDTO{
		ActorID:    entry.ActorID,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		EntityRepr: entry.EntityRepr,
		Action:     int(entry.Action),
		Message:    entry.Message,
		OccurredAt: entry.OccurredAt,
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
