package ports

import (
	"context"

	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// The identifier uniqueness rules are additionally enforced by database
// constraints; Add and Update surface constraint violations as
// delivery.DuplicateDeliveryError.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Delete removes a delivery. Callers must verify deletability through
	// the aggregate's CanBeDeleted predicate first.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountByGood counts all deliveries of a good across the system.
	// Feeds the stock-ceiling check.
	CountByGood(ctx context.Context, goodID kernel.UUID) (int, error)

	// CountForRecipient counts deliveries for a (campaign, recipient, good,
	// point) tuple. Feeds the deletion guard for prefilled records.
	CountForRecipient(ctx context.Context, campaignID, recipientID, goodID kernel.UUID,
		pointID *kernel.UUID) (int, error)

	// HasDisabledForRecipient reports whether a disabled delivery exists for
	// the (campaign, recipient, good) tuple. Feeds the replacement rule for
	// campaigns that forbid new deliveries after disablement.
	HasDisabledForRecipient(ctx context.Context, campaignID, recipientID, goodID kernel.UUID) (bool, error)

	// ExistsCollision reports whether another delivery for the same good and
	// campaign shares the given non-null stock identifier or non-null manual
	// identifier. excludeID, when non-nil, removes the record's own prior
	// version from the search on update.
	ExistsCollision(ctx context.Context, goodID, campaignID kernel.UUID,
		stockIdentifierID *kernel.UUID, manualIdentifier string, excludeID *kernel.UUID) (bool, error)

	// GetByRecipient retrieves all deliveries of a recipient within a campaign.
	GetByRecipient(ctx context.Context, campaignID, recipientID kernel.UUID) ([]*delivery.Delivery, error)
}
