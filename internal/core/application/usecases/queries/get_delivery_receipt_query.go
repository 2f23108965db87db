package queries

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryReceiptQueryIsNotConstructed = errors.New(
	"GetDeliveryReceiptQuery must be created via NewGetDeliveryReceiptQuery constructor",
)

// GetDeliveryReceiptQuery retrieves a signed receipt token for a delivered
// good. The token wraps the receipt payload and can be verified offline.
type GetDeliveryReceiptQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryReceiptQuery creates a query for a delivery receipt.
// Returns an error if the delivery ID is invalid.
func NewGetDeliveryReceiptQuery(deliveryID kernel.UUID) (GetDeliveryReceiptQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryReceiptQuery{}, err
	}

	return GetDeliveryReceiptQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryReceiptQueryIsNotConstructed if validation fails.
func (q GetDeliveryReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryReceiptQueryIsNotConstructed)
}

// DeliveryID returns the delivery the receipt is issued for.
func (q GetDeliveryReceiptQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryReceiptQueryResponse carries the signed receipt token.
type GetDeliveryReceiptQueryResponse struct {
	Token string
}
