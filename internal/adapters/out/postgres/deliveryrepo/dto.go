// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. Duplicate bookings are fenced twice: the
// validation engine checks for collisions before writing, and two partial
// unique indexes on the table catch raced writes that slip past it.
package deliveryrepo

import (
	"time"

	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
//
// The partial unique indexes enforce that one serialized unit, and one manual
// identifier code, is handed out at most once per campaign and good.
type DeliveryDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CampaignID    *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_delivery_unit,priority:1;uniqueIndex:idx_delivery_code,priority:1"`
	ChosenPointID uuid.UUID  `gorm:"type:uuid;index;not null"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	GoodID        uuid.UUID  `gorm:"type:uuid;index;not null;uniqueIndex:idx_delivery_unit,priority:2;uniqueIndex:idx_delivery_code,priority:2"`
	Quantity      int

	StockIdentifierID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_delivery_unit,priority:3,where:stock_identifier_id IS NOT NULL"`
	GoodIdentifier    *string    `gorm:"uniqueIndex:idx_delivery_code,priority:3,where:good_identifier IS NOT NULL"`

	DeliveryPointID *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate    *time.Time `gorm:"index"`
	DeliveredByID   *uuid.UUID `gorm:"type:uuid"`

	DisabledDate    *time.Time
	DisabledPointID *uuid.UUID `gorm:"type:uuid"`
	DisabledByID    *uuid.UUID `gorm:"type:uuid"`

	ReturnDate      *time.Time
	ReturnedPointID *uuid.UUID `gorm:"type:uuid"`
	ReturnedToID    *uuid.UUID `gorm:"type:uuid"`

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var goodIdentifier *string
	if code := d.ManualIdentifier(); code != "" {
		goodIdentifier = &code
	}

	return DeliveryDTO{
		ID:                d.ID().Bytes(),
		CampaignID:        rawUUID(d.CampaignID()),
		ChosenPointID:     d.ChosenPointID().Bytes(),
		RecipientID:       d.RecipientID().Bytes(),
		GoodID:            d.GoodID().Bytes(),
		Quantity:          d.Quantity(),
		StockIdentifierID: rawUUID(d.StockIdentifierID()),
		GoodIdentifier:    goodIdentifier,
		DeliveryPointID:   rawUUID(d.DeliveryPointID()),
		DeliveryDate:      d.DeliveryDate(),
		DeliveredByID:     rawUUID(d.DeliveredByID()),
		DisabledDate:      d.DisabledDate(),
		DisabledPointID:   rawUUID(d.DisabledPointID()),
		DisabledByID:      rawUUID(d.DisabledByID()),
		ReturnDate:        d.ReturnDate(),
		ReturnedPointID:   rawUUID(d.ReturnedPointID()),
		ReturnedToID:      rawUUID(d.ReturnedToID()),
		Notes:             d.Notes(),
		CreatedAt:         d.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	chosenPointID, err := kernel.UUIDFromBytes(dto.ChosenPointID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	goodID, err := kernel.UUIDFromBytes(dto.GoodID[:])
	if err != nil {
		return nil, err
	}

	campaignID, err := domainUUID(dto.CampaignID)
	if err != nil {
		return nil, err
	}

	stockIdentifierID, err := domainUUID(dto.StockIdentifierID)
	if err != nil {
		return nil, err
	}

	deliveryPointID, err := domainUUID(dto.DeliveryPointID)
	if err != nil {
		return nil, err
	}

	deliveredByID, err := domainUUID(dto.DeliveredByID)
	if err != nil {
		return nil, err
	}

	disabledPointID, err := domainUUID(dto.DisabledPointID)
	if err != nil {
		return nil, err
	}

	disabledByID, err := domainUUID(dto.DisabledByID)
	if err != nil {
		return nil, err
	}

	returnedPointID, err := domainUUID(dto.ReturnedPointID)
	if err != nil {
		return nil, err
	}

	returnedToID, err := domainUUID(dto.ReturnedToID)
	if err != nil {
		return nil, err
	}

	var goodIdentifier string
	if dto.GoodIdentifier != nil {
		goodIdentifier = *dto.GoodIdentifier
	}

	return delivery.RestoreDelivery(
		id, chosenPointID, recipientID, goodID,
		dto.Quantity,
		campaignID, stockIdentifierID,
		goodIdentifier,
		deliveryPointID,
		dto.DeliveryDate, deliveredByID,
		dto.DisabledDate, disabledPointID, disabledByID,
		dto.ReturnDate, returnedPointID, returnedToID,
		dto.Notes,
		dto.CreatedAt,
	)
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func domainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
