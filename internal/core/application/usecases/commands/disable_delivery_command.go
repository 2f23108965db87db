package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrDisableDeliveryCommandIsNotConstructed = errors.New(
	"DisableDeliveryCommand must be created via NewDisableDeliveryCommand constructor",
)

// DisableDeliveryCommand represents an operator withdrawing a delivery record,
// keeping it on file but out of the active flow.
type DisableDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	operatorID kernel.UUID
	pointID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDisableDeliveryCommand creates a command to withdraw a delivery record.
// Returns an error if any ID is invalid.
func NewDisableDeliveryCommand(deliveryID, operatorID, pointID kernel.UUID) (DisableDeliveryCommand, error) {
	command := DisableDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setOperatorID(operatorID),
		command.setPointID(pointID),
	); err != nil {
		return DisableDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDisableDeliveryCommandIsNotConstructed if validation fails.
func (c DisableDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDisableDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being withdrawn.
func (c DisableDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OperatorID returns the withdrawing operator.
func (c DisableDeliveryCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// PointID returns the point where the withdrawal was recorded.
func (c DisableDeliveryCommand) PointID() kernel.UUID {
	return c.pointID
}

func (c *DisableDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *DisableDeliveryCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *DisableDeliveryCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}
