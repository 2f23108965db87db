package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrCannotDeleteDelivery is returned when deletion rules block the removal.
var ErrCannotDeleteDelivery = errors.New("delivery cannot be deleted")

// DeleteDeliveryCommandHandler handles removals of bookings.
// Removal is blocked once the good was handed out or the record disabled, and
// for the recipient's sole system-prefilled booking.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeleteDeliveryCommandHandler creates a handler for booking removals.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking removal command.
// Counts the recipient's bookings for the same campaign, good and point to
// apply the sole-booking rule, removes the record and writes an audit entry.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
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

	campaignID := booking.CampaignID()
	if campaignID == nil {
		return ErrCampaignNotFound
	}

	camp, err := uow.CampaignRepository().Get(ctx, *campaignID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCampaignNotFound
	}
	if err != nil {
		return err
	}

	count, err := deliveryRepo.CountForRecipient(
		ctx, camp.ID(), booking.RecipientID(), booking.GoodID(), booking.DeliveryPointID())
	if err != nil {
		return err
	}

	if !booking.CanBeDeleted(camp, count) {
		return ErrCannotDeleteDelivery
	}

	if err = deliveryRepo.Delete(ctx, booking.ID()); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "delivery",
		EntityID:   booking.ID().String(),
		EntityRepr: booking.GoodID().String(),
		Action:     ports.AuditChanged,
		Message:    "delivery deleted",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
