package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrReturnDeliveryCommandIsNotConstructed = errors.New(
	"ReturnDeliveryCommand must be created via NewReturnDeliveryCommand constructor",
)

// ReturnDeliveryCommand represents a delivered good being given back to an
// operator at a point.
type ReturnDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	operatorID kernel.UUID
	pointID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnDeliveryCommand creates a command to record a return.
// Returns an error if any ID is invalid.
func NewReturnDeliveryCommand(deliveryID, operatorID, pointID kernel.UUID) (ReturnDeliveryCommand, error) {
	command := ReturnDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setOperatorID(operatorID),
		command.setPointID(pointID),
	); err != nil {
		return ReturnDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReturnDeliveryCommandIsNotConstructed if validation fails.
func (c ReturnDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReturnDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being returned.
func (c ReturnDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OperatorID returns the operator taking the good back.
func (c ReturnDeliveryCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// PointID returns the point where the return happened.
func (c ReturnDeliveryCommand) PointID() kernel.UUID {
	return c.pointID
}

func (c *ReturnDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReturnDeliveryCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *ReturnDeliveryCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}
