package commands

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand represents a request to put a staff operator on duty
// at a delivery point. A multi-tenant operator may act on deliveries chosen
// for other points of the campaign.
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	pointID      kernel.UUID
	operatorID   kernel.UUID
	actorID      kernel.UUID
	multiTenant  bool

	guard guard.ConstructorGuard
}

// NewAssignOperatorCommand creates a command to assign an operator to a
// delivery point. Returns an error if any ID is invalid.
func NewAssignOperatorCommand(
	assignmentID, pointID, operatorID, actorID kernel.UUID, multiTenant bool,
) (AssignOperatorCommand, error) {
	command := AssignOperatorCommand{
		multiTenant: multiTenant,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setPointID(pointID),
		command.setOperatorID(operatorID),
		command.setActorID(actorID),
	); err != nil {
		return AssignOperatorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOperatorCommandIsNotConstructed if validation fails.
func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c AssignOperatorCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// PointID returns the identifier of the target delivery point.
func (c AssignOperatorCommand) PointID() kernel.UUID {
	return c.pointID
}

// OperatorID returns the identifier of the operator being assigned.
func (c AssignOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// ActorID returns the identifier of the user performing the operation.
func (c AssignOperatorCommand) ActorID() kernel.UUID {
	return c.actorID
}

// MultiTenant reports whether the operator may act across points.
func (c AssignOperatorCommand) MultiTenant() bool {
	return c.multiTenant
}

func (c *AssignOperatorCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignOperatorCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}

func (c *AssignOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *AssignOperatorCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
