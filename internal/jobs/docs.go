// Package jobs provides scheduled background tasks for the distribution system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for campaign housekeeping.
//
// # Available Jobs
//
// 1. CampaignExpiryJob - Runs every minute to deactivate campaigns whose
// distribution window has closed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireCampaignsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Expiry is idempotent, so overlapping or missed runs are
// harmless.
package jobs
