package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// DisableDeliveryCommandHandler handles withdrawals of delivery records.
// Any record that is not already disabled can be withdrawn; a delivered good
// can still be returned afterwards.
type DisableDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDisableDeliveryCommandHandler creates a handler for withdrawals.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewDisableDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DisableDeliveryCommandHandler {
	return DisableDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
// Performs the transition on the aggregate, persists the delivery and writes
// the state change to the audit log.
func (h DisableDeliveryCommandHandler) Handle(ctx context.Context, cmd DisableDeliveryCommand) error {
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

	change, err := booking.Disable(time.Now(), cmd.PointID(), cmd.OperatorID())
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
