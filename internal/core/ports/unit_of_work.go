package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CampaignRepository returns a CampaignRepository bound to the current transaction.
	CampaignRepository() CampaignRepository

	// DeliveryPointRepository returns a DeliveryPointRepository bound to the current transaction.
	DeliveryPointRepository() DeliveryPointRepository

	// AgreementRepository returns an AgreementRepository bound to the current transaction.
	AgreementRepository() AgreementRepository

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// GoodRepository returns a GoodRepository bound to the current transaction.
	GoodRepository() GoodRepository

	// StockRepository returns a StockRepository bound to the current transaction.
	StockRepository() StockRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// AuditLog returns the append-only audit sink bound to the current transaction,
	// so audit entries commit or roll back together with the write they describe.
	AuditLog() AuditLog
}
