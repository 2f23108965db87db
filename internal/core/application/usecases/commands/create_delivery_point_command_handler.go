package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrCampaignNotFound is returned when the referenced campaign does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// CreateDeliveryPointCommandHandler handles the business logic for opening
// delivery points. Verifies the owning campaign before persisting.
type CreateDeliveryPointCommandHandler struct {
	uowFactory PointUoWFactory
}

// NewCreateDeliveryPointCommandHandler creates a handler for delivery point creation.
// Requires a PointUoWFactory for transactional persistence.
func NewCreateDeliveryPointCommandHandler(uowFactory PointUoWFactory) CreateDeliveryPointCommandHandler {
	return CreateDeliveryPointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery point creation command.
// Confirms the campaign exists, persists the point and appends a "created"
// audit entry. Returns ErrCampaignNotFound when the campaign is unknown.
func (h CreateDeliveryPointCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPointCommand) error {
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

	if _, err := uow.CampaignRepository().Get(ctx, cmd.CampaignID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}

	point, err := campaign.NewDeliveryPoint(cmd.PointID(), cmd.CampaignID(), cmd.Name(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.DeliveryPointRepository().Add(ctx, point); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "delivery_point",
		EntityID:   point.ID().String(),
		EntityRepr: point.Name(),
		Action:     ports.AuditCreated,
		Message:    "delivery point created",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
