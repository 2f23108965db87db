package campaignrepo

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCampaignRepository implements CampaignRepository using GORM.
type GormCampaignRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCampaignRepository creates a new GORM campaign repository.
func NewGormCampaignRepository(db *gorm.DB, tracker aggregateTracker) *GormCampaignRepository {
	return &GormCampaignRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new campaign to the database.
func (r *GormCampaignRepository) Add(ctx context.Context, aggregate *campaign.Campaign) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := campaignFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing campaign to the database.
func (r *GormCampaignRepository) Update(ctx context.Context, aggregate *campaign.Campaign) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := campaignFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CampaignDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a campaign by ID.
func (r *GormCampaignRepository) Get(ctx context.Context, id kernel.UUID) (*campaign.Campaign, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CampaignDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("campaign", id.String())
		}
		return nil, err
	}

	return campaignToDomain(dto)
}

// GetBySlug retrieves a campaign by its URL-safe identifier.
func (r *GormCampaignRepository) GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error) {
	var dto CampaignDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("campaign", slug)
		}
		return nil, err
	}

	return campaignToDomain(dto)
}

// FindActiveExpired retrieves active campaigns whose window closed before now.
func (r *GormCampaignRepository) FindActiveExpired(ctx context.Context, now time.Time) ([]*campaign.Campaign, error) {
	var dtos []CampaignDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active = ? AND date_end < ?", true, now).Error; err != nil {
		return nil, err
	}

	campaigns := make([]*campaign.Campaign, 0, len(dtos))
	for _, dto := range dtos {
		c, err := campaignToDomain(dto)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, nil
}

// GormDeliveryPointRepository implements DeliveryPointRepository using GORM.
type GormDeliveryPointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryPointRepository creates a new GORM delivery point repository.
func NewGormDeliveryPointRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPointRepository {
	return &GormDeliveryPointRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery point to the database.
func (r *GormDeliveryPointRepository) Add(ctx context.Context, point *campaign.DeliveryPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	dto := pointFromDomain(point)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(point.ID(), point)
	return nil
}

// Update saves an existing delivery point to the database.
func (r *GormDeliveryPointRepository) Update(ctx context.Context, point *campaign.DeliveryPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	dto := pointFromDomain(point)
	result := r.db.WithContext(ctx).Model(&DeliveryPointDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(point.ID(), point)
	return nil
}

// Get retrieves a delivery point by ID.
func (r *GormDeliveryPointRepository) Get(ctx context.Context, id kernel.UUID) (*campaign.DeliveryPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery point", id.String())
		}
		return nil, err
	}

	return pointToDomain(dto)
}

// GetByCampaign retrieves all delivery points of a campaign.
func (r *GormDeliveryPointRepository) GetByCampaign(ctx context.Context, campaignID kernel.UUID) ([]*campaign.DeliveryPoint, error) {
	if err := campaignID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryPointDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "campaign_id = ?", campaignID.Bytes()).Error; err != nil {
		return nil, err
	}

	points := make([]*campaign.DeliveryPoint, 0, len(dtos))
	for _, dto := range dtos {
		p, err := pointToDomain(dto)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}

// GormAgreementRepository implements AgreementRepository using GORM.
type GormAgreementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormAgreementRepository creates a new GORM agreement repository.
func NewGormAgreementRepository(db *gorm.DB, tracker aggregateTracker) *GormAgreementRepository {
	return &GormAgreementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agreement to the database.
func (r *GormAgreementRepository) Add(ctx context.Context, agreement *campaign.Agreement) error {
	if err := agreement.Validate(); err != nil {
		return err
	}

	dto := agreementFromDomain(agreement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(agreement.ID(), agreement)
	return nil
}

// Link attaches an agreement to a campaign.
func (r *GormAgreementRepository) Link(ctx context.Context, link *campaign.CampaignAgreement) error {
	dto := linkFromDomain(link)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetActiveByCampaign retrieves all active agreements attached to a campaign.
func (r *GormAgreementRepository) GetActiveByCampaign(ctx context.Context, campaignID kernel.UUID) ([]*campaign.Agreement, error) {
	if err := campaignID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AgreementDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN campaign_agreements ca ON ca.agreement_id = agreements.id").
		Where("ca.campaign_id = ? AND agreements.is_active = ?", campaignID.Bytes(), true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	agreements := make([]*campaign.Agreement, 0, len(dtos))
	for _, dto := range dtos {
		a, err := agreementToDomain(dto)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, a)
	}

	return agreements, nil
}

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddOperator saves a new operator assignment to the database.
func (r *GormAssignmentRepository) AddOperator(ctx context.Context, assignment *campaign.OperatorAssignment) error {
	dto := operatorAssignmentFromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(assignment.ID(), assignment)
	return nil
}

// GetOperatorByPoint retrieves the operator's assignment at a delivery point.
func (r *GormAssignmentRepository) GetOperatorByPoint(
	ctx context.Context, operatorID, pointID kernel.UUID,
) (*campaign.OperatorAssignment, error) {
	if err := errors.Join(operatorID.Validate(), pointID.Validate()); err != nil {
		return nil, err
	}

	var dto OperatorAssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "operator_id = ? AND delivery_point_id = ?", operatorID.Bytes(), pointID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator_assignment", operatorID.String())
		}
		return nil, err
	}

	return operatorAssignmentToDomain(dto)
}

// AddUser saves a new user assignment to the database. A user already
// assigned to the point is rejected by the unique index.
func (r *GormAssignmentRepository) AddUser(ctx context.Context, assignment *campaign.UserAssignment) error {
	dto := userAssignmentFromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(assignment.ID(), assignment)
	return nil
}
