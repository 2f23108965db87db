package ports

import (
	"context"
	"time"
)

// AuditAction is the kind of change recorded in an audit entry.
type AuditAction int

const (
	// AuditCreated marks the first persistence of an entity.
	AuditCreated AuditAction = iota + 1

	// AuditChanged marks any later mutation, including lifecycle transitions.
	AuditChanged
)

// String returns the human-readable name of the action.
func (a AuditAction) String() string {
	switch a {
	case AuditCreated:
		return "created"
	case AuditChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// AuditEntry is one append-only audit record. Entries are written by command
// handlers after successful state transitions; the validation engine itself
// never writes them.
type AuditEntry struct {
	ActorID    string
	EntityType string
	EntityID   string
	EntityRepr string
	Action     AuditAction
	Message    string
	OccurredAt time.Time
}

// AuditLog accepts audit entries and persists them append-only.
type AuditLog interface {
	Append(ctx context.Context, entry AuditEntry) error
}
