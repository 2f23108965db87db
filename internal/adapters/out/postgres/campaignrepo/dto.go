// Package campaignrepo provides data transfer objects and mapping functions for
// campaign persistence. It implements the repository pattern for the campaign
// aggregate and its satellite entities: delivery points, agreements and the
// campaign-agreement links.
package campaignrepo

import (
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CampaignDTO represents the database structure for persisting campaign aggregates.
type CampaignDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                  string    `gorm:"not null"`
	Slug                  string    `gorm:"uniqueIndex;not null"`
	DateStart             time.Time `gorm:"not null"`
	DateEnd               time.Time `gorm:"not null;index"`
	RequireAgreement      bool
	OperatorCanCreate     bool
	NewDeliveryIfDisabled bool
	IsActive              bool `gorm:"index"`
	NoteOperators         string
	NoteUsers             string
}

// TableName specifies the database table name for campaign entities.
func (CampaignDTO) TableName() string {
	return "campaigns"
}

// DeliveryPointDTO represents the database structure for staffed hand-out points.
// Points are removed together with their campaign.
type DeliveryPointDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampaignID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"not null"`
	Location   string
	Notes      string
	IsActive   bool
}

// TableName specifies the database table name for delivery point entities.
func (DeliveryPointDTO) TableName() string {
	return "delivery_points"
}

// AgreementDTO represents the database structure for agreement texts.
type AgreementDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	IsActive    bool
}

// TableName specifies the database table name for agreement entities.
func (AgreementDTO) TableName() string {
	return "agreements"
}

// CampaignAgreementDTO links an agreement to a campaign. Both sides of the
// link are delete-protected while the link exists.
type CampaignAgreementDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampaignID  uuid.UUID `gorm:"type:uuid;index;not null"`
	AgreementID uuid.UUID `gorm:"type:uuid;index;not null"`
}

// TableName specifies the database table name for campaign-agreement links.
func (CampaignAgreementDTO) TableName() string {
	return "campaign_agreements"
}

// OperatorAssignmentDTO links a staff operator to a delivery point.
// An operator serves at most one active assignment per point.
type OperatorAssignmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperatorID      uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_operator_point"`
	DeliveryPointID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_operator_point"`
	MultiTenant     bool
	IsActive        bool
}

// TableName specifies the database table name for operator assignments.
func (OperatorAssignmentDTO) TableName() string {
	return "operator_assignments"
}

// UserAssignmentDTO links an end user to the delivery point serving them.
type UserAssignmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_point"`
	DeliveryPointID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_point"`
}

// TableName specifies the database table name for user assignments.
func (UserAssignmentDTO) TableName() string {
	return "user_assignments"
}

func campaignFromDomain(c *campaign.Campaign) CampaignDTO {
	return CampaignDTO{
		ID:                    c.ID().Bytes(),
		Name:                  c.Name(),
		Slug:                  c.Slug(),
		DateStart:             c.DateStart(),
		DateEnd:               c.DateEnd(),
		RequireAgreement:      c.RequireAgreement(),
		OperatorCanCreate:     c.OperatorCanCreate(),
		NewDeliveryIfDisabled: c.NewDeliveryIfDisabled(),
		IsActive:              c.IsActive(),
		NoteOperators:         c.NoteOperators(),
		NoteUsers:             c.NoteUsers(),
	}
}

func campaignToDomain(dto CampaignDTO) (*campaign.Campaign, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return campaign.RestoreCampaign(
		id,
		dto.Name, dto.Slug,
		dto.DateStart, dto.DateEnd,
		dto.RequireAgreement, dto.OperatorCanCreate, dto.NewDeliveryIfDisabled, dto.IsActive,
		dto.NoteOperators, dto.NoteUsers,
	)
}

func pointFromDomain(p *campaign.DeliveryPoint) DeliveryPointDTO {
	return DeliveryPointDTO{
		ID:         p.ID().Bytes(),
		CampaignID: p.CampaignID().Bytes(),
		Name:       p.Name(),
		Location:   p.Location(),
		Notes:      p.Notes(),
		IsActive:   p.IsActive(),
	}
}

func pointToDomain(dto DeliveryPointDTO) (*campaign.DeliveryPoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	campaignID, err := kernel.UUIDFromBytes(dto.CampaignID[:])
	if err != nil {
		return nil, err
	}

	return campaign.RestoreDeliveryPoint(id, campaignID, dto.Name, dto.Location, dto.Notes, dto.IsActive)
}

func agreementFromDomain(a *campaign.Agreement) AgreementDTO {
	return AgreementDTO{
		ID:          a.ID().Bytes(),
		Name:        a.Name(),
		Description: a.Description(),
		IsActive:    a.IsActive(),
	}
}

func agreementToDomain(dto AgreementDTO) (*campaign.Agreement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return campaign.RestoreAgreement(id, dto.Name, dto.Description, dto.IsActive)
}

func linkFromDomain(l *campaign.CampaignAgreement) CampaignAgreementDTO {
	return CampaignAgreementDTO{
		ID:          l.ID().Bytes(),
		CampaignID:  l.CampaignID().Bytes(),
		AgreementID: l.AgreementID().Bytes(),
	}
}

func operatorAssignmentFromDomain(a *campaign.OperatorAssignment) OperatorAssignmentDTO {
	return OperatorAssignmentDTO{
		ID:              a.ID().Bytes(),
		OperatorID:      a.OperatorID().Bytes(),
		DeliveryPointID: a.DeliveryPointID().Bytes(),
		MultiTenant:     a.MultiTenant(),
		IsActive:        a.IsActive(),
	}
}

func operatorAssignmentToDomain(dto OperatorAssignmentDTO) (*campaign.OperatorAssignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	pointID, err := kernel.UUIDFromBytes(dto.DeliveryPointID[:])
	if err != nil {
		return nil, err
	}

	return campaign.RestoreOperatorAssignment(id, operatorID, pointID, dto.MultiTenant, dto.IsActive)
}

func userAssignmentFromDomain(a *campaign.UserAssignment) UserAssignmentDTO {
	return UserAssignmentDTO{
		ID:              a.ID().Bytes(),
		UserID:          a.UserID().Bytes(),
		DeliveryPointID: a.DeliveryPointID().Bytes(),
	}
}
