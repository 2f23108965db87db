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
	ErrOperatorCannotCreate   = errors.New("campaign does not allow operator-created deliveries")
	ErrDisabledDeliveryExists = errors.New("recipient has a disabled delivery and the campaign forbids a replacement")
)

// CreateDeliveryCommandHandler handles the business logic for booking deliveries.
// Resolves the campaign from the chosen point, enforces the campaign's creation
// rules and runs the full validation chain before persisting.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryCommand(kernel.NewUUID(), pointID, userID, goodID, 1)
//
//	err := handler.Handle(ctx, cmd.WithOperator(operatorID))
//	switch {
//	case errors.Is(err, ErrOperatorCannotCreate):
//	    log.Println("Operators may not book in this campaign")
//	case errors.Is(err, delivery.ErrStockExceeded):
//	    log.Println("Not enough stock at this point")
//	case err != nil:
//	    log.Printf("Booking failed: %v", err)
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery booking.
// Requires a DeliveryUoWFactory so the validation reads and the write share
// one transaction.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery booking command.
// Operator bookings are rejected when the campaign forbids them; when the
// campaign forbids replacements, a recipient with a disabled delivery for the
// same good cannot book again. An operator booking fixes the hand-out point
// and records the operator in charge. The validation chain then resolves the
// campaign, checks quantities, stock ceilings, identifiers and collisions,
// and persists the delivery.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	pointRepo := uow.DeliveryPointRepository()
	deliveryRepo := uow.DeliveryRepository()

	point, err := pointRepo.Get(ctx, cmd.ChosenPointID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDeliveryPointNotFound
	}
	if err != nil {
		return err
	}

	camp, err := uow.CampaignRepository().Get(ctx, point.CampaignID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCampaignNotFound
	}
	if err != nil {
		return err
	}

	if cmd.OperatorID() != nil && !camp.OperatorCanCreate() {
		return ErrOperatorCannotCreate
	}

	if !camp.NewDeliveryIfDisabled() {
		hasDisabled, disabledErr := deliveryRepo.HasDisabledForRecipient(
			ctx, camp.ID(), cmd.RecipientID(), cmd.GoodID())
		if disabledErr != nil {
			return disabledErr
		}
		if hasDisabled {
			return ErrDisabledDeliveryExists
		}
	}

	booking, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.ChosenPointID(), cmd.RecipientID(), cmd.GoodID(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = booking.SetStockIdentifier(cmd.StockIdentifierID()); err != nil {
		return err
	}
	booking.SetManualIdentifier(cmd.ManualIdentifier())
	booking.SetNotes(cmd.Notes())

	if cmd.OperatorID() != nil {
		if err = booking.SetDeliveryPoint(cmd.ChosenPointID()); err != nil {
			return err
		}
		if err = booking.RecordDeliveringOperator(*cmd.OperatorID()); err != nil {
			return err
		}
	}

	validator := services.NewDeliveryValidator(pointRepo, uow.StockRepository(), deliveryRepo)
	if err = validator.Submit(ctx, booking, true); err != nil {
		return err
	}

	actorID := cmd.RecipientID()
	if cmd.OperatorID() != nil {
		actorID = *cmd.OperatorID()
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    actorID.String(),
		EntityType: "delivery",
		EntityID:   booking.ID().String(),
		EntityRepr: booking.GoodID().String(),
		Action:     ports.AuditCreated,
		Message:    "delivery created",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
