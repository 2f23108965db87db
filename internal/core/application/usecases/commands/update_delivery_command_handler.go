package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/services"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrDeliveryNotFound is returned when the referenced delivery does not exist.
	ErrDeliveryNotFound = errors.New("delivery not found")

	// ErrDeliveryNotEditable is returned when the delivery has already been
	// handed out, returned or disabled.
	ErrDeliveryNotEditable = errors.New("delivery can no longer be edited")
)

// UpdateDeliveryCommandHandler handles edits to undelivered bookings.
// Re-runs the full validation chain so an edit obeys the same rules as a
// fresh booking, minus the stock ceiling.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for booking edits.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking edit command.
// Loads the delivery, rejects edits once the lifecycle has moved past waiting,
// applies the requested field changes and resubmits through the validation
// chain. The collision check excludes the delivery's own record.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	if status := booking.Status(); status != delivery.Pending && status != delivery.Waiting {
		return ErrDeliveryNotEditable
	}

	if cmd.Quantity() != nil {
		if err = booking.SetQuantity(*cmd.Quantity()); err != nil {
			return err
		}
	}
	if cmd.StockIdentifierID() != nil {
		if err = booking.SetStockIdentifier(cmd.StockIdentifierID()); err != nil {
			return err
		}
	}
	if cmd.ManualIdentifier() != nil {
		booking.SetManualIdentifier(*cmd.ManualIdentifier())
	}
	if cmd.Notes() != nil {
		booking.SetNotes(*cmd.Notes())
	}

	validator := services.NewDeliveryValidator(
		uow.DeliveryPointRepository(), uow.StockRepository(), deliveryRepo)
	if err = validator.Submit(ctx, booking, false); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "delivery",
		EntityID:   booking.ID().String(),
		EntityRepr: booking.GoodID().String(),
		Action:     ports.AuditChanged,
		Message:    "delivery updated",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
