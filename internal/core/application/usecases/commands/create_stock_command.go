package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrCreateStockCommandIsNotConstructed = errors.New(
		"CreateStockCommand must be created via NewCreateStockCommand constructor",
	)
	ErrStockMaxNumberIsInvalid = errors.New("stock max number must not be negative")
)

// CreateStockCommand represents a request to allocate stock of a good to a
// delivery point. A max number of zero means the stock is unlimited.
type CreateStockCommand struct { //nolint:recvcheck //using for validation
	stockID   kernel.UUID
	pointID   kernel.UUID
	goodID    kernel.UUID
	actorID   kernel.UUID
	maxNumber int

	guard guard.ConstructorGuard
}

// NewCreateStockCommand creates a command to allocate stock to a point.
// Returns an error if any ID is invalid or the max number is negative.
func NewCreateStockCommand(
	stockID, pointID, goodID, actorID kernel.UUID, maxNumber int,
) (CreateStockCommand, error) {
	command := CreateStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStockID(stockID),
		command.setPointID(pointID),
		command.setGoodID(goodID),
		command.setActorID(actorID),
		command.setMaxNumber(maxNumber),
	); err != nil {
		return CreateStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStockCommandIsNotConstructed if validation fails.
func (c CreateStockCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockCommandIsNotConstructed)
}

// StockID returns the unique identifier for the stock allocation.
func (c CreateStockCommand) StockID() kernel.UUID {
	return c.stockID
}

// PointID returns the identifier of the delivery point holding the stock.
func (c CreateStockCommand) PointID() kernel.UUID {
	return c.pointID
}

// GoodID returns the identifier of the stocked good.
func (c CreateStockCommand) GoodID() kernel.UUID {
	return c.goodID
}

// ActorID returns the identifier of the user performing the operation.
func (c CreateStockCommand) ActorID() kernel.UUID {
	return c.actorID
}

// MaxNumber returns the distribution ceiling, zero meaning unlimited.
func (c CreateStockCommand) MaxNumber() int {
	return c.maxNumber
}

func (c *CreateStockCommand) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}

	c.stockID = stockID
	return nil
}

func (c *CreateStockCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}

func (c *CreateStockCommand) setGoodID(goodID kernel.UUID) error {
	if err := goodID.Validate(); err != nil {
		return err
	}

	c.goodID = goodID
	return nil
}

func (c *CreateStockCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateStockCommand) setMaxNumber(maxNumber int) error {
	if maxNumber < 0 {
		return ErrStockMaxNumberIsInvalid
	}

	c.maxNumber = maxNumber
	return nil
}
