package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrAgreementNameTaken is returned when the campaign already carries an
// active clause with the same name.
var ErrAgreementNameTaken = errors.New("an active agreement with this name already exists for the campaign")

// CreateAgreementCommandHandler handles the business logic for attaching
// consent clauses to campaigns.
type CreateAgreementCommandHandler struct {
	uowFactory AgreementUoWFactory
}

// NewCreateAgreementCommandHandler creates a handler for agreement creation.
// Requires an AgreementUoWFactory for transactional persistence.
func NewCreateAgreementCommandHandler(uowFactory AgreementUoWFactory) CreateAgreementCommandHandler {
	return CreateAgreementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agreement creation command.
// Confirms the campaign exists, rejects a name already in use among the
// campaign's active clauses, then persists the agreement and its link in one
// transaction. Returns ErrCampaignNotFound when the campaign is unknown.
func (h CreateAgreementCommandHandler) Handle(ctx context.Context, cmd CreateAgreementCommand) error {
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

	active, err := uow.AgreementRepository().GetActiveByCampaign(ctx, cmd.CampaignID())
	if err != nil {
		return err
	}

	for _, existing := range active {
		if existing.Name() == cmd.Name() {
			return ErrAgreementNameTaken
		}
	}

	agreement, err := campaign.NewAgreement(cmd.AgreementID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.AgreementRepository().Add(ctx, agreement); err != nil {
		return err
	}

	link, err := campaign.NewCampaignAgreement(kernel.NewUUID(), cmd.CampaignID(), agreement.ID())
	if err != nil {
		return err
	}

	if err = uow.AgreementRepository().Link(ctx, link); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "agreement",
		EntityID:   agreement.ID().String(),
		EntityRepr: agreement.Name(),
		Action:     ports.AuditCreated,
		Message:    "agreement created",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
