package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrAssignUserCommandIsNotConstructed = errors.New(
	"AssignUserCommand must be created via NewAssignUserCommand constructor",
)

// AssignUserCommand represents a request to register the delivery point that
// serves an end user.
type AssignUserCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	pointID      kernel.UUID
	userID       kernel.UUID
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignUserCommand creates a command to assign a user to a delivery point.
// Returns an error if any ID is invalid.
func NewAssignUserCommand(
	assignmentID, pointID, userID, actorID kernel.UUID,
) (AssignUserCommand, error) {
	command := AssignUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setPointID(pointID),
		command.setUserID(userID),
		command.setActorID(actorID),
	); err != nil {
		return AssignUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignUserCommandIsNotConstructed if validation fails.
func (c AssignUserCommand) Validate() error {
	return c.guard.Validate(ErrAssignUserCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c AssignUserCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// PointID returns the identifier of the target delivery point.
func (c AssignUserCommand) PointID() kernel.UUID {
	return c.pointID
}

// UserID returns the identifier of the user being assigned.
func (c AssignUserCommand) UserID() kernel.UUID {
	return c.userID
}

// ActorID returns the identifier of the user performing the operation.
func (c AssignUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignUserCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignUserCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}

func (c *AssignUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AssignUserCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
