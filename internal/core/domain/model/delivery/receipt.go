package delivery

import (
	"encoding/json"
	"time"

	"gooddelivery/internal/pkg/errs"
)

// ReceiptPayload is the compact payload handed to the external signing
// service when a delivery receipt is issued. The field names form the wire
// contract; the signer treats the serialized bytes as opaque.
type ReceiptPayload struct {
	ID            string    `json:"id"`
	User          string    `json:"user"`
	DeliveryPoint string    `json:"delivery_point"`
	Modified      time.Time `json:"modified"`
}

// NewReceiptPayload builds the receipt payload for a delivery. The concrete
// delivery point must be set; modified is the record's last modification
// instant as known to the persistence layer.
func NewReceiptPayload(d *Delivery, modified time.Time) (ReceiptPayload, error) {
	if err := d.Validate(); err != nil {
		return ReceiptPayload{}, err
	}
	if d.DeliveryPointID() == nil {
		return ReceiptPayload{}, errs.NewValueIsRequiredError("deliveryPoint")
	}

	return ReceiptPayload{
		ID:            d.ID().String(),
		User:          d.RecipientID().String(),
		DeliveryPoint: d.DeliveryPointID().String(),
		Modified:      modified,
	}, nil
}

// Bytes serializes the payload as UTF-8 JSON.
func (p ReceiptPayload) Bytes() ([]byte, error) {
	return json.Marshal(p)
}
