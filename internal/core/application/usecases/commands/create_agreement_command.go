package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrCreateAgreementCommandIsNotConstructed = errors.New(
		"CreateAgreementCommand must be created via NewCreateAgreementCommand constructor",
	)
	ErrAgreementNameIsRequired        = errors.New("agreement name is required")
	ErrAgreementDescriptionIsRequired = errors.New("agreement description is required")
)

// CreateAgreementCommand represents a request to attach a consent clause to a
// campaign. Recipients of campaigns that require agreement confirm against
// the active clauses.
type CreateAgreementCommand struct { //nolint:recvcheck //using for validation
	agreementID kernel.UUID
	campaignID  kernel.UUID
	actorID     kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateAgreementCommand creates a command to attach a consent clause to a
// campaign. Returns an error if any ID is invalid or name or description is empty.
func NewCreateAgreementCommand(
	agreementID, campaignID, actorID kernel.UUID, name, description string,
) (CreateAgreementCommand, error) {
	command := CreateAgreementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAgreementID(agreementID),
		command.setCampaignID(campaignID),
		command.setActorID(actorID),
		command.setName(name),
		command.setDescription(description),
	); err != nil {
		return CreateAgreementCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAgreementCommandIsNotConstructed if validation fails.
func (c CreateAgreementCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgreementCommandIsNotConstructed)
}

// AgreementID returns the unique identifier for the new agreement.
func (c CreateAgreementCommand) AgreementID() kernel.UUID {
	return c.agreementID
}

// CampaignID returns the identifier of the campaign the clause belongs to.
func (c CreateAgreementCommand) CampaignID() kernel.UUID {
	return c.campaignID
}

// ActorID returns the identifier of the user performing the operation.
func (c CreateAgreementCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the agreement name.
func (c CreateAgreementCommand) Name() string {
	return c.name
}

// Description returns the rich-text clause body.
func (c CreateAgreementCommand) Description() string {
	return c.description
}

func (c *CreateAgreementCommand) setAgreementID(agreementID kernel.UUID) error {
	if err := agreementID.Validate(); err != nil {
		return err
	}

	c.agreementID = agreementID
	return nil
}

func (c *CreateAgreementCommand) setCampaignID(campaignID kernel.UUID) error {
	if err := campaignID.Validate(); err != nil {
		return err
	}

	c.campaignID = campaignID
	return nil
}

func (c *CreateAgreementCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateAgreementCommand) setName(name string) error {
	if name == "" {
		return ErrAgreementNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateAgreementCommand) setDescription(description string) error {
	if description == "" {
		return ErrAgreementDescriptionIsRequired
	}

	c.description = description
	return nil
}
