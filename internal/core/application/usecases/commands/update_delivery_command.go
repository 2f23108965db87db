package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents a request to change an undelivered booking.
// Every changeable field is optional: a nil pointer leaves the current value
// untouched, so callers only carry the fields they actually edit.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID

	quantity          *int
	stockIdentifierID *kernel.UUID
	manualIdentifier  *string
	notes             *string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to edit a booking.
// Returns an error if either ID is invalid.
func NewUpdateDeliveryCommand(deliveryID, actorID kernel.UUID) (UpdateDeliveryCommand, error) {
	command := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorID(actorID),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return command, nil
}

// WithQuantity replaces the booked quantity.
func (c UpdateDeliveryCommand) WithQuantity(quantity int) UpdateDeliveryCommand {
	c.quantity = &quantity
	return c
}

// WithStockIdentifier replaces the referenced serialized unit.
func (c UpdateDeliveryCommand) WithStockIdentifier(identifierID kernel.UUID) UpdateDeliveryCommand {
	c.stockIdentifierID = &identifierID
	return c
}

// WithManualIdentifier replaces the operator-entered identifier code.
// An empty string clears it.
func (c UpdateDeliveryCommand) WithManualIdentifier(code string) UpdateDeliveryCommand {
	c.manualIdentifier = &code
	return c
}

// WithNotes replaces the free-text notes.
func (c UpdateDeliveryCommand) WithNotes(notes string) UpdateDeliveryCommand {
	c.notes = &notes
	return c
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the booking to edit.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the identifier of the user performing the operation.
func (c UpdateDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Quantity returns the new quantity, nil when unchanged.
func (c UpdateDeliveryCommand) Quantity() *int {
	return c.quantity
}

// StockIdentifierID returns the new serialized unit reference, nil when unchanged.
func (c UpdateDeliveryCommand) StockIdentifierID() *kernel.UUID {
	return c.stockIdentifierID
}

// ManualIdentifier returns the new identifier code, nil when unchanged.
func (c UpdateDeliveryCommand) ManualIdentifier() *string {
	return c.manualIdentifier
}

// Notes returns the new notes, nil when unchanged.
func (c UpdateDeliveryCommand) Notes() *string {
	return c.notes
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
