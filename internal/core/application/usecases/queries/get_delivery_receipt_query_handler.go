package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrDeliveryNotFound is returned when the referenced delivery does not exist.
	ErrDeliveryNotFound = errors.New("delivery not found")

	// ErrReceiptNotAvailable is returned for deliveries that were never handed out.
	ErrReceiptNotAvailable = errors.New("receipt is only available for delivered goods")
)

// GetDeliveryReceiptQueryHandler issues signed receipts for delivered goods.
// Reads the delivery row directly and delegates the signature to the
// configured signer.
type GetDeliveryReceiptQueryHandler struct {
	db     *gorm.DB
	signer ports.ReceiptSigner
}

// NewGetDeliveryReceiptQueryHandler creates a handler for receipt queries.
// Requires a GORM database connection and a receipt signer.
func NewGetDeliveryReceiptQueryHandler(db *gorm.DB, signer ports.ReceiptSigner) GetDeliveryReceiptQueryHandler {
	return GetDeliveryReceiptQueryHandler{db: db, signer: signer}
}

// Handle executes the receipt query.
// Builds the receipt payload from the delivered row and returns the signed
// token. Returns ErrReceiptNotAvailable when the good was not handed out yet.
func (h GetDeliveryReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryReceiptQuery,
) (GetDeliveryReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryReceiptQueryResponse{}, err
	}

	var id, recipientID uuid.UUID
	var pointID *uuid.UUID
	var deliveryDate *time.Time
	var updatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			recipient_id,
			delivery_point_id,
			delivery_date,
			updated_at
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Row()

	err := row.Scan(&id, &recipientID, &pointID, &deliveryDate, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryReceiptQueryResponse{}, ErrDeliveryNotFound
	}
	if err != nil {
		return GetDeliveryReceiptQueryResponse{}, err
	}

	if deliveryDate == nil || pointID == nil {
		return GetDeliveryReceiptQueryResponse{}, ErrReceiptNotAvailable
	}

	payload := delivery.ReceiptPayload{
		ID:            id.String(),
		User:          recipientID.String(),
		DeliveryPoint: pointID.String(),
		Modified:      updatedAt,
	}

	raw, err := payload.Bytes()
	if err != nil {
		return GetDeliveryReceiptQueryResponse{}, err
	}

	token, err := h.signer.Sign(ctx, raw)
	if err != nil {
		return GetDeliveryReceiptQueryResponse{}, err
	}

	return GetDeliveryReceiptQueryResponse{Token: token}, nil
}
