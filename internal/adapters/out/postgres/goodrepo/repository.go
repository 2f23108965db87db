package goodrepo

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

// GormGoodRepository implements GoodRepository using GORM.
type GormGoodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormGoodRepository creates a new GORM goods-catalogue repository.
func NewGormGoodRepository(db *gorm.DB, tracker aggregateTracker) *GormGoodRepository {
	return &GormGoodRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddCategory saves a new category to the database.
func (r *GormGoodRepository) AddCategory(ctx context.Context, category *good.Category) error {
	dto := categoryFromDomain(category)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(category.ID(), category)
	return nil
}

// AddGood saves a new good to the database.
func (r *GormGoodRepository) AddGood(ctx context.Context, g *good.Good) error {
	dto := goodFromDomain(g)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(g.ID(), g)
	return nil
}

// GetGood retrieves a good by ID.
func (r *GormGoodRepository) GetGood(ctx context.Context, id kernel.UUID) (*good.Good, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("good", id.String())
		}
		return nil, err
	}

	return goodToDomain(dto)
}
