package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrOperatorAlreadyAssigned is returned when the operator already holds an
// active assignment at the delivery point.
var ErrOperatorAlreadyAssigned = errors.New("operator is already assigned to this delivery point")

// AssignOperatorCommandHandler handles the business logic for putting staff
// operators on duty at delivery points.
type AssignOperatorCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignOperatorCommandHandler creates a handler for operator assignment.
// Requires an AssignmentUoWFactory for transactional persistence.
func NewAssignOperatorCommandHandler(uowFactory AssignmentUoWFactory) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the operator assignment command.
// Confirms the delivery point exists and the operator is not already on duty
// there, then persists the assignment. Returns ErrDeliveryPointNotFound when
// the point is unknown.
func (h AssignOperatorCommandHandler) Handle(ctx context.Context, cmd AssignOperatorCommand) error {
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

	existing, err := uow.AssignmentRepository().GetOperatorByPoint(ctx, cmd.OperatorID(), cmd.PointID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && existing.IsActive() {
		return ErrOperatorAlreadyAssigned
	}

	assignment, err := campaign.NewOperatorAssignment(
		cmd.AssignmentID(), cmd.OperatorID(), cmd.PointID(), cmd.MultiTenant())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().AddOperator(ctx, assignment); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "operator_assignment",
		EntityID:   assignment.ID().String(),
		Action:     ports.AuditCreated,
		Message:    "operator assigned to delivery point",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
