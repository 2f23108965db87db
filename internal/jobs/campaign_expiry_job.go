package jobs

import (
	"context"
	"log/slog"

	"gooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CampaignExpiryJob deactivates campaigns whose distribution window closed.
// Runs once a minute so expired campaigns stop accepting bookings promptly.
type CampaignExpiryJob struct {
	handler commands.ExpireCampaignsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCampaignExpiryJob creates a new job for the campaign expiry sweep.
func NewCampaignExpiryJob(handler commands.ExpireCampaignsCommandHandler, logger *slog.Logger) *CampaignExpiryJob {
	return &CampaignExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "campaign_expiry_job"),
	}
}

// Start begins the expiry sweep, running at the top of every minute.
func (j *CampaignExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireCampaignsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Campaign expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Campaign expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *CampaignExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Campaign expiry job stopped")
}
