package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/services"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrCannotMarkDelivered is returned when the campaign rules do not allow an
// operator to confirm the hand-out.
var ErrCannotMarkDelivered = errors.New("delivery cannot be marked as delivered by an operator")

// MarkDeliveredCommandHandler handles operator hand-out confirmations.
// An operator may only confirm when the campaign does not require the
// recipient's own agreement.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for operator confirmations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewMarkDeliveredCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the operator confirmation command.
// Records the confirming operator on the delivery, checks the campaign rules,
// performs the transition and resubmits through the validation chain so
// identifier and collision rules still hold. The resulting state change is
// written to the audit log.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if booking.DeliveredByID() == nil {
		if err = booking.RecordDeliveringOperator(cmd.OperatorID()); err != nil {
			return err
		}
	}

	if !booking.CanBeMarkedByOperator(camp) {
		return ErrCannotMarkDelivered
	}

	change, err := booking.MarkDelivered(time.Now(), cmd.PointID(), cmd.OperatorID())
	if err != nil {
		return err
	}

	validator := services.NewDeliveryValidator(
		uow.DeliveryPointRepository(), uow.StockRepository(), deliveryRepo)
	if err = validator.Submit(ctx, booking, false); err != nil {
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
