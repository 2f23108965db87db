package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrAddStockIdentifierCommandIsNotConstructed = errors.New(
		"AddStockIdentifierCommand must be created via NewAddStockIdentifierCommand constructor",
	)
	ErrIdentifierCodeIsRequired = errors.New("identifier code is required")
)

// AddStockIdentifierCommand represents a request to register one serialized
// unit of a stock, identified by its unique code.
type AddStockIdentifierCommand struct { //nolint:recvcheck //using for validation
	identifierID kernel.UUID
	stockID      kernel.UUID
	actorID      kernel.UUID
	code         string

	guard guard.ConstructorGuard
}

// NewAddStockIdentifierCommand creates a command to register a serialized unit.
// Returns an error if any ID is invalid or the code is empty.
func NewAddStockIdentifierCommand(
	identifierID, stockID, actorID kernel.UUID, code string,
) (AddStockIdentifierCommand, error) {
	command := AddStockIdentifierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIdentifierID(identifierID),
		command.setStockID(stockID),
		command.setActorID(actorID),
		command.setCode(code),
	); err != nil {
		return AddStockIdentifierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddStockIdentifierCommandIsNotConstructed if validation fails.
func (c AddStockIdentifierCommand) Validate() error {
	return c.guard.Validate(ErrAddStockIdentifierCommandIsNotConstructed)
}

// IdentifierID returns the unique identifier for the serialized unit.
func (c AddStockIdentifierCommand) IdentifierID() kernel.UUID {
	return c.identifierID
}

// StockID returns the identifier of the owning stock.
func (c AddStockIdentifierCommand) StockID() kernel.UUID {
	return c.stockID
}

// ActorID returns the identifier of the user performing the operation.
func (c AddStockIdentifierCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Code returns the unit's unique code.
func (c AddStockIdentifierCommand) Code() string {
	return c.code
}

func (c *AddStockIdentifierCommand) setIdentifierID(identifierID kernel.UUID) error {
	if err := identifierID.Validate(); err != nil {
		return err
	}

	c.identifierID = identifierID
	return nil
}

func (c *AddStockIdentifierCommand) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}

	c.stockID = stockID
	return nil
}

func (c *AddStockIdentifierCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AddStockIdentifierCommand) setCode(code string) error {
	if code == "" {
		return ErrIdentifierCodeIsRequired
	}

	c.code = code
	return nil
}
