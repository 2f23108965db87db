package commands

import (
	"context"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/ports"
)

// CreateCampaignCommandHandler handles the business logic for campaign creation.
// Persists the new campaign and records an audit entry in the same transaction.
type CreateCampaignCommandHandler struct {
	uowFactory CampaignUoWFactory
}

// NewCreateCampaignCommandHandler creates a handler for campaign creation.
// Requires a CampaignUoWFactory for transactional persistence.
func NewCreateCampaignCommandHandler(uowFactory CampaignUoWFactory) CreateCampaignCommandHandler {
	return CreateCampaignCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the campaign creation command.
// Builds the aggregate with the requested behaviour flags, persists it and
// appends a "created" audit entry. Rolls back on any error.
func (h CreateCampaignCommandHandler) Handle(ctx context.Context, cmd CreateCampaignCommand) error {
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

	camp, err := campaign.NewCampaign(cmd.CampaignID(), cmd.Name(), cmd.Slug(), cmd.DateStart(), cmd.DateEnd())
	if err != nil {
		return err
	}

	camp.SetRequireAgreement(cmd.RequireAgreement())
	camp.SetOperatorCanCreate(cmd.OperatorCanCreate())
	camp.SetNewDeliveryIfDisabled(cmd.NewDeliveryIfDisabled())
	camp.SetNotes(cmd.NoteOperators(), cmd.NoteUsers())

	if err = uow.CampaignRepository().Add(ctx, camp); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "campaign",
		EntityID:   camp.ID().String(),
		EntityRepr: camp.Name(),
		Action:     ports.AuditCreated,
		Message:    "campaign created",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
