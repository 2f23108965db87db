// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"gooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CampaignRepoFactory provides access to the campaign repository within a transaction.
	CampaignRepoFactory interface {
		CampaignRepository() ports.CampaignRepository
	}

	// PointRepoFactory provides access to the delivery-point repository within a transaction.
	PointRepoFactory interface {
		DeliveryPointRepository() ports.DeliveryPointRepository
	}

	// AgreementRepoFactory provides access to the agreement repository within a transaction.
	AgreementRepoFactory interface {
		AgreementRepository() ports.AgreementRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// GoodRepoFactory provides access to the goods-catalogue repository within a transaction.
	GoodRepoFactory interface {
		GoodRepository() ports.GoodRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AuditLogFactory provides access to the audit sink within a transaction,
	// so audit entries commit together with the writes they describe.
	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// CampaignUoW manages transactions for campaign-only operations.
	CampaignUoW interface {
		TxManager
		CampaignRepoFactory
		AuditLogFactory
	}

	// CampaignUoWFactory creates new campaign unit of work instances.
	CampaignUoWFactory interface {
		Create() CampaignUoW
	}

	// PointUoW manages transactions for delivery-point operations.
	// Campaign access is included to verify the owning campaign.
	PointUoW interface {
		TxManager
		CampaignRepoFactory
		PointRepoFactory
		AuditLogFactory
	}

	// PointUoWFactory creates new delivery-point unit of work instances.
	PointUoWFactory interface {
		Create() PointUoW
	}

	// AgreementUoW manages transactions for agreement operations.
	// Campaign access is included to verify the owning campaign.
	AgreementUoW interface {
		TxManager
		CampaignRepoFactory
		AgreementRepoFactory
		AuditLogFactory
	}

	// AgreementUoWFactory creates new agreement unit of work instances.
	AgreementUoWFactory interface {
		Create() AgreementUoW
	}

	// AssignmentUoW manages transactions for point-assignment operations.
	// Point access is included to verify the target delivery point.
	AssignmentUoW interface {
		TxManager
		PointRepoFactory
		AssignmentRepoFactory
		AuditLogFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CatalogUoW manages transactions for goods-catalogue operations.
	CatalogUoW interface {
		TxManager
		GoodRepoFactory
		AuditLogFactory
	}

	// CatalogUoWFactory creates new catalogue unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// StockUoW manages transactions for stock operations.
	StockUoW interface {
		TxManager
		PointRepoFactory
		StockRepoFactory
		AuditLogFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// DeliveryUoW manages transactions for delivery writes. It spans every
	// repository the validation engine reads, so all consistency checks and
	// the write itself share one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   validator := services.NewDeliveryValidator(
	//       uow.DeliveryPointRepository(), uow.StockRepository(), uow.DeliveryRepository())
	//   // ... submit the delivery
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		CampaignRepoFactory
		PointRepoFactory
		StockRepoFactory
		DeliveryRepoFactory
		AuditLogFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
