package campaign

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrDeliveryPointIsNotConstructed is returned when a DeliveryPoint instance was
	// not created through the NewDeliveryPoint factory method.
	ErrDeliveryPointIsNotConstructed = errors.New("DeliveryPoint must be created via NewDeliveryPoint constructor")
)

// DeliveryPoint is a staffed location within a campaign from which goods are
// handed out. A point belongs to exactly one campaign for its whole lifetime.
type DeliveryPoint struct {
	id         kernel.UUID
	campaignID kernel.UUID
	name       string
	location   string
	notes      string
	isActive   bool

	isConstructed bool
}

// NewDeliveryPoint creates a new active DeliveryPoint for the given campaign.
func NewDeliveryPoint(id, campaignID kernel.UUID, name, location string) (*DeliveryPoint, error) {
	p := &DeliveryPoint{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCampaignID(campaignID),
		p.setName(name),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPoint reconstructs a DeliveryPoint from persistence.
func RestoreDeliveryPoint(id, campaignID kernel.UUID, name, location, notes string, isActive bool) (*DeliveryPoint, error) {
	p, err := NewDeliveryPoint(id, campaignID, name, location)
	if err != nil {
		return nil, err
	}

	p.notes = notes
	p.isActive = isActive
	return p, nil
}

// Validate ensures the DeliveryPoint was created through its constructor.
func (p *DeliveryPoint) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrDeliveryPointIsNotConstructed
	}
	return nil
}

// ID returns the point's unique identifier.
func (p *DeliveryPoint) ID() kernel.UUID {
	return p.id
}

// CampaignID returns the identifier of the owning campaign.
func (p *DeliveryPoint) CampaignID() kernel.UUID {
	return p.campaignID
}

// Name returns the point's display name.
func (p *DeliveryPoint) Name() string {
	return p.name
}

// Location returns the free-text location description.
func (p *DeliveryPoint) Location() string {
	return p.location
}

// Notes returns the free-text notes.
func (p *DeliveryPoint) Notes() string {
	return p.notes
}

// IsActive reports whether the point is active.
func (p *DeliveryPoint) IsActive() bool {
	return p.isActive
}

// SetNotes replaces the free-text notes.
func (p *DeliveryPoint) SetNotes(notes string) {
	p.notes = notes
}

// Deactivate marks the point inactive.
func (p *DeliveryPoint) Deactivate() {
	p.isActive = false
}

func (p *DeliveryPoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPoint) setCampaignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.campaignID = id
	return nil
}

func (p *DeliveryPoint) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *DeliveryPoint) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	p.location = location
	return nil
}
