package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrCategoryNameIsRequired = errors.New("category name is required")
)

// CreateCategoryCommand represents a request to register a goods category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	actorID     kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to register a goods category.
// Returns an error if any ID is invalid or the name is empty.
func NewCreateCategoryCommand(
	categoryID, actorID kernel.UUID, name, description string,
) (CreateCategoryCommand, error) {
	command := CreateCategoryCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCategoryID(categoryID),
		command.setActorID(actorID),
		command.setName(name),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCategoryCommandIsNotConstructed if validation fails.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the unique identifier for the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// ActorID returns the identifier of the user performing the operation.
func (c CreateCategoryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the optional category description.
func (c CreateCategoryCommand) Description() string {
	return c.description
}

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return ErrCategoryNameIsRequired
	}

	c.name = name
	return nil
}
