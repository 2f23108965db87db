package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// AssignUserCommandHandler handles the business logic for registering the
// delivery point that serves an end user.
type AssignUserCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignUserCommandHandler creates a handler for user assignment.
// Requires an AssignmentUoWFactory for transactional persistence.
func NewAssignUserCommandHandler(uowFactory AssignmentUoWFactory) AssignUserCommandHandler {
	return AssignUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user assignment command.
// Confirms the delivery point exists and persists the assignment. A user
// already assigned to the point is rejected by the storage layer.
// Returns ErrDeliveryPointNotFound when the point is unknown.
func (h AssignUserCommandHandler) Handle(ctx context.Context, cmd AssignUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DeliveryPointRepository().Get(ctx, cmd.PointID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrDeliveryPointNotFound
		}
		return err
	}

	assignment, err := campaign.NewUserAssignment(cmd.AssignmentID(), cmd.UserID(), cmd.PointID())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().AddUser(ctx, assignment); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "user_assignment",
		EntityID:   assignment.ID().String(),
		Action:     ports.AuditCreated,
		Message:    "user assigned to delivery point",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
