package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/services"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrCannotConfirmDelivery is returned when the campaign or the delivery
	// state does not allow a recipient confirmation.
	ErrCannotConfirmDelivery = errors.New("delivery cannot be confirmed by the recipient")

	// ErrNotDeliveryRecipient is returned when someone other than the booked
	// recipient tries to confirm.
	ErrNotDeliveryRecipient = errors.New("only the booked recipient can confirm the delivery")
)

// ConfirmDeliveryCommandHandler handles recipient confirmations.
// A recipient may confirm only while the campaign is in progress, requires an
// agreement and a concrete hand-out point has been fixed.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for recipient confirmations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient confirmation command.
// Verifies the caller is the booked recipient and the campaign rules allow a
// self-confirmation, then performs the transition at the delivery's fixed
// point. When an operator was recorded for the hand-out their attribution is
// kept; the audit entry names the recipient as the actor either way.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if !booking.RecipientID().IsEqual(cmd.RecipientID()) {
		return ErrNotDeliveryRecipient
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

	if !booking.CanBeMarkedByUser(camp, time.Now()) {
		return ErrCannotConfirmDelivery
	}

	deliveredBy := cmd.RecipientID()
	if booking.DeliveredByID() != nil {
		deliveredBy = *booking.DeliveredByID()
	}

	change, err := booking.MarkDelivered(time.Now(), *booking.DeliveryPointID(), deliveredBy)
	if err != nil {
		return err
	}

	validator := services.NewDeliveryValidator(
		uow.DeliveryPointRepository(), uow.StockRepository(), deliveryRepo)
	if err = validator.Submit(ctx, booking, false); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.RecipientID().String(),
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
