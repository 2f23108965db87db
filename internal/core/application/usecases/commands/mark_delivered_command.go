package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents an operator confirming the hand-out of a
// good at a concrete point, without recipient involvement.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	operatorID kernel.UUID
	pointID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command for an operator hand-out confirmation.
// Returns an error if any ID is invalid.
func NewMarkDeliveredCommand(deliveryID, operatorID, pointID kernel.UUID) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setOperatorID(operatorID),
		command.setPointID(pointID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDeliveredCommandIsNotConstructed if validation fails.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being confirmed.
func (c MarkDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OperatorID returns the confirming operator.
func (c MarkDeliveredCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// PointID returns the point where the hand-out happened.
func (c MarkDeliveredCommand) PointID() kernel.UUID {
	return c.pointID
}

func (c *MarkDeliveredCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *MarkDeliveredCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *MarkDeliveredCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}
