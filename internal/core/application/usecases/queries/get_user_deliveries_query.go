package queries

import (
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrGetUserDeliveriesQueryIsNotConstructed = errors.New(
	"GetUserDeliveriesQuery must be created via NewGetUserDeliveriesQuery constructor",
)

// GetUserDeliveriesQuery retrieves all bookings of one recipient inside a
// campaign, with their derived lifecycle state.
//
// Example:
//
//	query, err := NewGetUserDeliveriesQuery(campaignID, userID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get deliveries: %w", err)
//	}
//	for _, d := range deliveries {
//	    fmt.Printf("%s: %s x%d (%s)\n", d.ID, d.GoodName, d.Quantity, d.Status)
//	}
type GetUserDeliveriesQuery struct {
	campaignID  kernel.UUID
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserDeliveriesQuery creates a query for one recipient's bookings.
// Returns an error if either ID is invalid.
func NewGetUserDeliveriesQuery(campaignID, recipientID kernel.UUID) (GetUserDeliveriesQuery, error) {
	query := GetUserDeliveriesQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(campaignID.Validate(), recipientID.Validate()); err != nil {
		return GetUserDeliveriesQuery{}, err
	}

	query.campaignID = campaignID
	query.recipientID = recipientID
	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserDeliveriesQueryIsNotConstructed if validation fails.
func (q GetUserDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserDeliveriesQueryIsNotConstructed)
}

// CampaignID returns the campaign the bookings belong to.
func (q GetUserDeliveriesQuery) CampaignID() kernel.UUID {
	return q.campaignID
}

// RecipientID returns the recipient whose bookings are listed.
func (q GetUserDeliveriesQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// GetUserDeliveriesQueryResponse represents one booking of the recipient.
// The status string follows the lifecycle precedence: disabled wins over
// returned, returned over delivered.
type GetUserDeliveriesQueryResponse struct {
	ID           kernel.UUID
	GoodName     string
	PointName    string
	Quantity     int
	Status       string
	DeliveryDate *time.Time
}
