package commands

import (
	"context"
	"time"
)

// ExpireCampaignsCommandHandler deactivates campaigns whose window has closed.
// Intended to run from a periodic job so expired campaigns stop accepting new
// bookings without manual intervention.
type ExpireCampaignsCommandHandler struct {
	uowFactory CampaignUoWFactory
}

// NewExpireCampaignsCommandHandler creates a handler for the expiry sweep.
// Requires a CampaignUoWFactory for transactional persistence.
func NewExpireCampaignsCommandHandler(uowFactory CampaignUoWFactory) ExpireCampaignsCommandHandler {
	return ExpireCampaignsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep command.
// Fetches all still-active campaigns whose end has passed and deactivates
// them in one transaction.
func (h ExpireCampaignsCommandHandler) Handle(ctx context.Context, command ExpireCampaignsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	campaignRepo := uow.CampaignRepository()

	expired, err := campaignRepo.FindActiveExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, camp := range expired {
		camp.Deactivate()
		if err = campaignRepo.Update(ctx, camp); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
