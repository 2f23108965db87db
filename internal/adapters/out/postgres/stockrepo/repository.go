package stockrepo

import (
	"context"
	"errors"

	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock allocation to the database.
func (r *GormStockRepository) Add(ctx context.Context, stock *good.Stock) error {
	if err := stock.Validate(); err != nil {
		return err
	}

	dto := stockFromDomain(stock)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(stock.ID(), stock)
	return nil
}

// Get retrieves a stock allocation by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*good.Stock, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", id.String())
		}
		return nil, err
	}

	return stockToDomain(dto)
}

// GetByPointAndGood retrieves the allocation of a good at a point.
// Returns nil without an error when the point holds no stock of the good,
// so callers can treat a missing allocation as "no ceiling".
func (r *GormStockRepository) GetByPointAndGood(ctx context.Context, pointID, goodID kernel.UUID) (*good.Stock, error) {
	if err := errors.Join(pointID.Validate(), goodID.Validate()); err != nil {
		return nil, err
	}

	var dto StockDTO
	err := r.db.WithContext(ctx).
		First(&dto, "delivery_point_id = ? AND good_id = ?", pointID.Bytes(), goodID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return stockToDomain(dto)
}

// AddIdentifier saves a new serialized unit to the database.
func (r *GormStockRepository) AddIdentifier(ctx context.Context, identifier *good.StockIdentifier) error {
	dto := identifierFromDomain(identifier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(identifier.ID(), identifier)
	return nil
}

// GetIdentifier retrieves a serialized unit by ID.
func (r *GormStockRepository) GetIdentifier(ctx context.Context, id kernel.UUID) (*good.StockIdentifier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockIdentifierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock identifier", id.String())
		}
		return nil, err
	}

	return identifierToDomain(dto)
}

// HasIdentifiers reports whether a stock carries serialized units.
func (r *GormStockRepository) HasIdentifiers(ctx context.Context, stockID kernel.UUID) (bool, error) {
	if err := stockID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&StockIdentifierDTO{}).
		Where("stock_id = ?", stockID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IdentifiersByStock retrieves all serialized units of a stock.
func (r *GormStockRepository) IdentifiersByStock(ctx context.Context, stockID kernel.UUID) ([]*good.StockIdentifier, error) {
	if err := stockID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockIdentifierDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "stock_id = ?", stockID.Bytes()).Error; err != nil {
		return nil, err
	}

	identifiers := make([]*good.StockIdentifier, 0, len(dtos))
	for _, dto := range dtos {
		i, err := identifierToDomain(dto)
		if err != nil {
			return nil, err
		}
		identifiers = append(identifiers, i)
	}

	return identifiers, nil
}
