package queries

import (
	"context"
	"time"

	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserDeliveriesQueryHandler retrieves a recipient's bookings from the database.
// Reads the deliveries table directly and joins the good and point names for display.
type GetUserDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetUserDeliveriesQueryHandler creates a handler for recipient booking queries.
// Requires a GORM database connection for query execution.
func NewGetUserDeliveriesQueryHandler(db *gorm.DB) GetUserDeliveriesQueryHandler {
	return GetUserDeliveriesQueryHandler{db: db}
}

// Handle executes the query to list the recipient's bookings in the campaign.
// Results are sorted by creation time so the listing is stable across calls.
func (h GetUserDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetUserDeliveriesQuery,
) ([]GetUserDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetUserDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			g.name,
			COALESCE(p.name, ''),
			d.quantity,
			d.delivery_point_id IS NOT NULL,
			d.delivery_date,
			d.return_date,
			d.disabled_date
		FROM deliveries d
		JOIN goods g ON g.id = d.good_id
		LEFT JOIN delivery_points p ON p.id = d.delivery_point_id
		WHERE d.campaign_id = ? AND d.recipient_id = ?
		ORDER BY d.created_at
	`, query.CampaignID().Bytes(), query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUserDeliveriesQueryResponse
		var id uuid.UUID
		var hasPoint bool
		var deliveryDate, returnDate, disabledDate *time.Time

		err = rows.Scan(
			&id,
			&resp.GoodName,
			&resp.PointName,
			&resp.Quantity,
			&hasPoint,
			&deliveryDate,
			&returnDate,
			&disabledDate,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID
		resp.DeliveryDate = deliveryDate
		resp.Status = deriveStatus(hasPoint, deliveryDate, returnDate, disabledDate).String()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// deriveStatus mirrors the aggregate's precedence on raw row data.
func deriveStatus(hasPoint bool, deliveryDate, returnDate, disabledDate *time.Time) delivery.Status {
	switch {
	case disabledDate != nil:
		return delivery.Disabled
	case returnDate != nil:
		return delivery.Returned
	case deliveryDate != nil:
		return delivery.Delivered
	case !hasPoint:
		return delivery.Pending
	default:
		return delivery.Waiting
	}
}
