package commands

import (
	"errors"

	"gooddelivery/internal/pkg/guard"
)

var ErrExpireCampaignsCommandIsNotConstructed = errors.New(
	"ExpireCampaignsCommand must be created via NewExpireCampaignsCommand constructor",
)

// ExpireCampaignsCommand triggers the deactivation of campaigns whose
// distribution window has closed. Runs periodically from the job scheduler.
//
// Example:
//
//	cmd := NewExpireCampaignsCommand()
//	handler := NewExpireCampaignsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Campaign expiry sweep failed: %v", err)
//	}
type ExpireCampaignsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireCampaignsCommand creates a new command to trigger the expiry sweep.
// This is a parameterless command.
func NewExpireCampaignsCommand() ExpireCampaignsCommand {
	return ExpireCampaignsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireCampaignsCommandIsNotConstructed if validation fails.
func (c *ExpireCampaignsCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireCampaignsCommandIsNotConstructed,
	)
}
