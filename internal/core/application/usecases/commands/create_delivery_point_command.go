package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPointCommandIsNotConstructed = errors.New(
		"CreateDeliveryPointCommand must be created via NewCreateDeliveryPointCommand constructor",
	)
	ErrPointNameIsRequired = errors.New("delivery point name is required")
)

// CreateDeliveryPointCommand represents a request to open a staffed hand-out
// point inside a campaign.
type CreateDeliveryPointCommand struct { //nolint:recvcheck //using for validation
	pointID    kernel.UUID
	campaignID kernel.UUID
	actorID    kernel.UUID
	name       string
	location   string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPointCommand creates a command to open a delivery point.
// Returns an error if any ID is invalid or the name is empty.
func NewCreateDeliveryPointCommand(
	pointID, campaignID, actorID kernel.UUID, name, location string,
) (CreateDeliveryPointCommand, error) {
	command := CreateDeliveryPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPointID(pointID),
		command.setCampaignID(campaignID),
		command.setActorID(actorID),
		command.setName(name),
	); err != nil {
		return CreateDeliveryPointCommand{}, err
	}

	command.location = location
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryPointCommandIsNotConstructed if validation fails.
func (c CreateDeliveryPointCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPointCommandIsNotConstructed)
}

// PointID returns the unique identifier for the delivery point.
func (c CreateDeliveryPointCommand) PointID() kernel.UUID {
	return c.pointID
}

// CampaignID returns the identifier of the owning campaign.
func (c CreateDeliveryPointCommand) CampaignID() kernel.UUID {
	return c.campaignID
}

// ActorID returns the identifier of the user performing the operation.
func (c CreateDeliveryPointCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the point display name.
func (c CreateDeliveryPointCommand) Name() string {
	return c.name
}

// Location returns the free-text physical location of the point.
func (c CreateDeliveryPointCommand) Location() string {
	return c.location
}

func (c *CreateDeliveryPointCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}

func (c *CreateDeliveryPointCommand) setCampaignID(campaignID kernel.UUID) error {
	if err := campaignID.Validate(); err != nil {
		return err
	}

	c.campaignID = campaignID
	return nil
}

func (c *CreateDeliveryPointCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateDeliveryPointCommand) setName(name string) error {
	if name == "" {
		return ErrPointNameIsRequired
	}

	c.name = name
	return nil
}
