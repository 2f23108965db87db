package deliveryrepo

import (
	"context"
	"errors"

	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
// A unique violation on the identifier indexes surfaces as a
// delivery.DuplicateDeliveryError, catching duplicates raced past the
// application-level collision check.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapUniqueViolation(err, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
// All columns are written so cleared optional fields go back to NULL.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return mapUniqueViolation(result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a delivery by ID.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}

// CountByGood counts every booking of a good across all campaigns and points.
// The stock ceiling is applied against this system-wide count.
func (r *GormDeliveryRepository) CountByGood(ctx context.Context, goodID kernel.UUID) (int, error) {
	if err := goodID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("good_id = ?", goodID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountForRecipient counts the recipient's bookings of a good in a campaign
// at one point. A nil point matches bookings with no fixed point.
func (r *GormDeliveryRepository) CountForRecipient(
	ctx context.Context, campaignID, recipientID, goodID kernel.UUID, pointID *kernel.UUID,
) (int, error) {
	if err := errors.Join(campaignID.Validate(), recipientID.Validate(), goodID.Validate()); err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("campaign_id = ? AND recipient_id = ? AND good_id = ?",
			campaignID.Bytes(), recipientID.Bytes(), goodID.Bytes())
	if pointID != nil {
		query = query.Where("delivery_point_id = ?", pointID.Bytes())
	} else {
		query = query.Where("delivery_point_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

// HasDisabledForRecipient reports whether the recipient has a disabled
// booking of the good in the campaign.
func (r *GormDeliveryRepository) HasDisabledForRecipient(
	ctx context.Context, campaignID, recipientID, goodID kernel.UUID,
) (bool, error) {
	if err := errors.Join(campaignID.Validate(), recipientID.Validate(), goodID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("campaign_id = ? AND recipient_id = ? AND good_id = ? AND disabled_date IS NOT NULL",
			campaignID.Bytes(), recipientID.Bytes(), goodID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsCollision reports whether another booking in the campaign already
// carries the same serialized unit or the same manual identifier code for the
// good. excludeID leaves the booking's own row out of the check on updates.
func (r *GormDeliveryRepository) ExistsCollision(
	ctx context.Context, goodID, campaignID kernel.UUID,
	stockIdentifierID *kernel.UUID, manualIdentifier string, excludeID *kernel.UUID,
) (bool, error) {
	if err := errors.Join(goodID.Validate(), campaignID.Validate()); err != nil {
		return false, err
	}

	query := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("good_id = ? AND campaign_id = ?", goodID.Bytes(), campaignID.Bytes())

	switch {
	case stockIdentifierID != nil && manualIdentifier != "":
		query = query.Where("stock_identifier_id = ? OR good_identifier = ?",
			stockIdentifierID.Bytes(), manualIdentifier)
	case stockIdentifierID != nil:
		query = query.Where("stock_identifier_id = ?", stockIdentifierID.Bytes())
	case manualIdentifier != "":
		query = query.Where("good_identifier = ?", manualIdentifier)
	default:
		return false, nil
	}

	if excludeID != nil {
		query = query.Where("id != ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByRecipient retrieves the recipient's bookings in a campaign, oldest first.
func (r *GormDeliveryRepository) GetByRecipient(
	ctx context.Context, campaignID, recipientID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := errors.Join(campaignID.Validate(), recipientID.Validate()); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "campaign_id = ? AND recipient_id = ?", campaignID.Bytes(), recipientID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func mapUniqueViolation(err error, aggregate *delivery.Delivery) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolationCode {
		return err
	}

	var campaignID, identifier string
	if id := aggregate.CampaignID(); id != nil {
		campaignID = id.String()
	}
	if id := aggregate.StockIdentifierID(); id != nil {
		identifier = id.String()
	}
	if identifier == "" {
		identifier = aggregate.ManualIdentifier()
	}

	return delivery.NewDuplicateDeliveryError(aggregate.GoodID().String(), campaignID, identifier)
}
