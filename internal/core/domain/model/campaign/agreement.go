package campaign

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrAgreementIsNotConstructed is returned when an Agreement instance was not
	// created through the NewAgreement factory method.
	ErrAgreementIsNotConstructed = errors.New("Agreement must be created via NewAgreement constructor")
)

// Agreement is a named consent clause a recipient may need to accept before a
// delivery is confirmed. The description carries rich text.
type Agreement struct {
	id          kernel.UUID
	name        string
	description string
	isActive    bool

	isConstructed bool
}

// NewAgreement creates a new active Agreement.
func NewAgreement(id kernel.UUID, name, description string) (*Agreement, error) {
	a := &Agreement{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setDescription(description),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgreement reconstructs an Agreement from persistence.
func RestoreAgreement(id kernel.UUID, name, description string, isActive bool) (*Agreement, error) {
	a, err := NewAgreement(id, name, description)
	if err != nil {
		return nil, err
	}

	a.isActive = isActive
	return a, nil
}

// Validate ensures the Agreement was created through its constructor.
func (a *Agreement) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgreementIsNotConstructed
	}
	return nil
}

// ID returns the agreement's unique identifier.
func (a *Agreement) ID() kernel.UUID {
	return a.id
}

// Name returns the agreement's name.
func (a *Agreement) Name() string {
	return a.name
}

// Description returns the rich-text clause body.
func (a *Agreement) Description() string {
	return a.description
}

// IsActive reports whether the agreement is active.
func (a *Agreement) IsActive() bool {
	return a.isActive
}

// Deactivate marks the agreement inactive.
func (a *Agreement) Deactivate() {
	a.isActive = false
}

func (a *Agreement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agreement) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agreement) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	a.description = description
	return nil
}

// CampaignAgreement links an Agreement to a Campaign. Both sides of the link
// are delete-protected while the link exists.
type CampaignAgreement struct {
	id          kernel.UUID
	campaignID  kernel.UUID
	agreementID kernel.UUID
}

// NewCampaignAgreement creates a campaign-agreement link.
func NewCampaignAgreement(id, campaignID, agreementID kernel.UUID) (*CampaignAgreement, error) {
	if err := errors.Join(id.Validate(), campaignID.Validate(), agreementID.Validate()); err != nil {
		return nil, err
	}

	return &CampaignAgreement{
		id:          id,
		campaignID:  campaignID,
		agreementID: agreementID,
	}, nil
}

// ID returns the link's unique identifier.
func (l *CampaignAgreement) ID() kernel.UUID {
	return l.id
}

// CampaignID returns the linked campaign's identifier.
func (l *CampaignAgreement) CampaignID() kernel.UUID {
	return l.campaignID
}

// AgreementID returns the linked agreement's identifier.
func (l *CampaignAgreement) AgreementID() kernel.UUID {
	return l.agreementID
}
