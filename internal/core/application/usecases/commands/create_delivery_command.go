package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to book a delivery of a good for
// a recipient at a chosen point. When an operator ID is present the booking
// is made on the recipient's behalf and the hand-out point is fixed immediately.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(kernel.NewUUID(), pointID, userID, goodID, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//	cmd = cmd.WithOperator(operatorID).WithManualIdentifier("SN-0042")
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	chosenPointID kernel.UUID
	recipientID   kernel.UUID
	goodID        kernel.UUID
	quantity      int

	operatorID        *kernel.UUID
	stockIdentifierID *kernel.UUID
	manualIdentifier  string
	notes             string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to book a delivery.
// Returns an error if any required ID is invalid. The quantity is accepted
// as-is; zero and negative values are rejected downstream by the aggregate
// and the validation chain.
func NewCreateDeliveryCommand(
	deliveryID, chosenPointID, recipientID, goodID kernel.UUID, quantity int,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setChosenPointID(chosenPointID),
		command.setRecipientID(recipientID),
		command.setGoodID(goodID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	command.quantity = quantity
	return command, nil
}

// WithOperator marks the booking as operator-made.
func (c CreateDeliveryCommand) WithOperator(operatorID kernel.UUID) CreateDeliveryCommand {
	c.operatorID = &operatorID
	return c
}

// WithStockIdentifier references a serialized unit from the point's stock.
func (c CreateDeliveryCommand) WithStockIdentifier(identifierID kernel.UUID) CreateDeliveryCommand {
	c.stockIdentifierID = &identifierID
	return c
}

// WithManualIdentifier records the operator-entered identifier code.
func (c CreateDeliveryCommand) WithManualIdentifier(code string) CreateDeliveryCommand {
	c.manualIdentifier = code
	return c
}

// WithNotes attaches free-text notes to the booking.
func (c CreateDeliveryCommand) WithNotes(notes string) CreateDeliveryCommand {
	c.notes = notes
	return c
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ChosenPointID returns the point selected for the hand-out.
func (c CreateDeliveryCommand) ChosenPointID() kernel.UUID {
	return c.chosenPointID
}

// RecipientID returns the identifier of the user receiving the good.
func (c CreateDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// GoodID returns the identifier of the distributed good.
func (c CreateDeliveryCommand) GoodID() kernel.UUID {
	return c.goodID
}

// Quantity returns the requested amount.
func (c CreateDeliveryCommand) Quantity() int {
	return c.quantity
}

// OperatorID returns the booking operator, nil for recipient self-booking.
func (c CreateDeliveryCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

// StockIdentifierID returns the referenced serialized unit, if any.
func (c CreateDeliveryCommand) StockIdentifierID() *kernel.UUID {
	return c.stockIdentifierID
}

// ManualIdentifier returns the operator-entered identifier code.
func (c CreateDeliveryCommand) ManualIdentifier() string {
	return c.manualIdentifier
}

// Notes returns the free-text notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setChosenPointID(chosenPointID kernel.UUID) error {
	if err := chosenPointID.Validate(); err != nil {
		return err
	}

	c.chosenPointID = chosenPointID
	return nil
}

func (c *CreateDeliveryCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateDeliveryCommand) setGoodID(goodID kernel.UUID) error {
	if err := goodID.Validate(); err != nil {
		return err
	}

	c.goodID = goodID
	return nil
}
