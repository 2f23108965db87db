// Package stockrepo provides data transfer objects and mapping functions for
// stock persistence: per-point allocations of goods and their serialized units.
package stockrepo

import (
	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StockDTO represents the database structure for stock allocations.
// One row allocates one good to one delivery point.
type StockDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryPointID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_stock_point_good"`
	GoodID          uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_stock_point_good"`
	MaxNumber       int
}

// TableName specifies the database table name for stock entities.
func (StockDTO) TableName() string {
	return "stocks"
}

// StockIdentifierDTO represents the database structure for serialized units.
// Codes are unique within their stock.
type StockIdentifierDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	StockID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_stock_identifier_code"`
	Code    string    `gorm:"not null;uniqueIndex:idx_stock_identifier_code"`
}

// TableName specifies the database table name for stock identifier entities.
func (StockIdentifierDTO) TableName() string {
	return "stock_identifiers"
}

func stockFromDomain(s *good.Stock) StockDTO {
	return StockDTO{
		ID:              s.ID().Bytes(),
		DeliveryPointID: s.DeliveryPointID().Bytes(),
		GoodID:          s.GoodID().Bytes(),
		MaxNumber:       s.MaxNumber(),
	}
}

func stockToDomain(dto StockDTO) (*good.Stock, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pointID, err := kernel.UUIDFromBytes(dto.DeliveryPointID[:])
	if err != nil {
		return nil, err
	}

	goodID, err := kernel.UUIDFromBytes(dto.GoodID[:])
	if err != nil {
		return nil, err
	}

	return good.NewStock(id, pointID, goodID, dto.MaxNumber)
}

func identifierFromDomain(i *good.StockIdentifier) StockIdentifierDTO {
	return StockIdentifierDTO{
		ID:      i.ID().Bytes(),
		StockID: i.StockID().Bytes(),
		Code:    i.Code(),
	}
}

func identifierToDomain(dto StockIdentifierDTO) (*good.StockIdentifier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stockID, err := kernel.UUIDFromBytes(dto.StockID[:])
	if err != nil {
		return nil, err
	}

	return good.NewStockIdentifier(id, stockID, dto.Code)
}
