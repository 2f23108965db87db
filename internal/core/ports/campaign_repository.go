package ports

import (
	"context"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"
)

// CampaignRepository defines the persistence contract for campaign aggregates.
type CampaignRepository interface {
	// Add persists a new campaign. Name and slug uniqueness is enforced
	// by the storage layer.
	Add(ctx context.Context, aggregate *campaign.Campaign) error

	// Update persists changes to an existing campaign.
	Update(ctx context.Context, aggregate *campaign.Campaign) error

	// Get retrieves a campaign by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*campaign.Campaign, error)

	// GetBySlug retrieves a campaign by its slug.
	GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error)

	// FindActiveExpired retrieves active campaigns whose end date has passed.
	// Used by the expiry job to deactivate finished campaigns.
	FindActiveExpired(ctx context.Context, now time.Time) ([]*campaign.Campaign, error)
}

// DeliveryPointRepository defines the persistence contract for delivery points.
type DeliveryPointRepository interface {
	// Add persists a new delivery point.
	Add(ctx context.Context, point *campaign.DeliveryPoint) error

	// Update persists changes to an existing delivery point.
	Update(ctx context.Context, point *campaign.DeliveryPoint) error

	// Get retrieves a delivery point by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*campaign.DeliveryPoint, error)

	// GetByCampaign retrieves all delivery points of a campaign.
	GetByCampaign(ctx context.Context, campaignID kernel.UUID) ([]*campaign.DeliveryPoint, error)
}

// AgreementRepository defines the persistence contract for agreements and
// their campaign links.
type AgreementRepository interface {
	// Add persists a new agreement.
	Add(ctx context.Context, agreement *campaign.Agreement) error

	// Link associates an agreement with a campaign.
	Link(ctx context.Context, link *campaign.CampaignAgreement) error

	// GetActiveByCampaign retrieves the active agreements linked to a campaign.
	GetActiveByCampaign(ctx context.Context, campaignID kernel.UUID) ([]*campaign.Agreement, error)
}

// AssignmentRepository defines the persistence contract for staff and user
// links to delivery points.
type AssignmentRepository interface {
	// AddOperator persists a new operator assignment.
	AddOperator(ctx context.Context, assignment *campaign.OperatorAssignment) error

	// GetOperatorByPoint retrieves the operator's assignment at a delivery point.
	GetOperatorByPoint(ctx context.Context, operatorID, pointID kernel.UUID) (*campaign.OperatorAssignment, error)

	// AddUser persists a new user assignment. Uniqueness per user and point
	// is enforced by the storage layer.
	AddUser(ctx context.Context, assignment *campaign.UserAssignment) error
}
