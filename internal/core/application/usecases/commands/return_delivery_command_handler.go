package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ReturnDeliveryCommandHandler handles returns of delivered goods.
// A return is legal after a hand-out and before any prior return; a
// disablement does not block it.
type ReturnDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewReturnDeliveryCommandHandler creates a handler for returns.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewReturnDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ReturnDeliveryCommandHandler {
	return ReturnDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
// Performs the transition on the aggregate, persists the delivery and writes
// the state change to the audit log. Illegal transitions surface as a
// delivery.StateTransitionError from the aggregate.
func (h ReturnDeliveryCommandHandler) Handle(ctx context.Context, cmd ReturnDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	booking, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDeliveryNotFound
	}
	if err != nil {
		return err
	}

	change, err := booking.Return(time.Now(), cmd.PointID(), cmd.OperatorID())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, booking); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.OperatorID().String(),
		EntityType: "delivery",
		EntityID:   booking.ID().String(),
		EntityRepr: booking.GoodID().String(),
		Action:     ports.AuditChanged,
		Message:    change.Message(),
		OccurredAt: change.OccurredAt,
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
