package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrCreateGoodCommandIsNotConstructed = errors.New(
		"CreateGoodCommand must be created via NewCreateGoodCommand constructor",
	)
	ErrGoodNameIsRequired = errors.New("good name is required")
)

// CreateGoodCommand represents a request to register a good within a category.
type CreateGoodCommand struct { //nolint:recvcheck //using for validation
	goodID     kernel.UUID
	categoryID kernel.UUID
	actorID    kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewCreateGoodCommand creates a command to register a good.
// Returns an error if any ID is invalid or the name is empty.
func NewCreateGoodCommand(
	goodID, categoryID, actorID kernel.UUID, name string,
) (CreateGoodCommand, error) {
	command := CreateGoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setGoodID(goodID),
		command.setCategoryID(categoryID),
		command.setActorID(actorID),
		command.setName(name),
	); err != nil {
		return CreateGoodCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateGoodCommandIsNotConstructed if validation fails.
func (c CreateGoodCommand) Validate() error {
	return c.guard.Validate(ErrCreateGoodCommandIsNotConstructed)
}

// GoodID returns the unique identifier for the new good.
func (c CreateGoodCommand) GoodID() kernel.UUID {
	return c.goodID
}

// CategoryID returns the identifier of the owning category.
func (c CreateGoodCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// ActorID returns the identifier of the user performing the operation.
func (c CreateGoodCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the good's name.
func (c CreateGoodCommand) Name() string {
	return c.name
}

func (c *CreateGoodCommand) setGoodID(goodID kernel.UUID) error {
	if err := goodID.Validate(); err != nil {
		return err
	}

	c.goodID = goodID
	return nil
}

func (c *CreateGoodCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateGoodCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateGoodCommand) setName(name string) error {
	if name == "" {
		return ErrGoodNameIsRequired
	}

	c.name = name
	return nil
}
