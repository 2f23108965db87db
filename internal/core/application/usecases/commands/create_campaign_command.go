package commands

import (
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var (
	ErrCreateCampaignCommandIsNotConstructed = errors.New(
		"CreateCampaignCommand must be created via NewCreateCampaignCommand constructor",
	)
	ErrCampaignNameIsRequired = errors.New("campaign name is required")
	ErrCampaignWindowInvalid  = errors.New("campaign end must be after start")
)

// CreateCampaignCommand represents a request to open a new distribution campaign.
// Carries the identity, the distribution window and the behaviour flags that
// govern how deliveries inside the campaign are created and confirmed.
//
// Example:
//
//	cmd, err := NewCreateCampaignCommand(kernel.NewUUID(), actorID,
//	    "Winter Aid", "winter-aid", start, end)
//	if err != nil {
//	    return fmt.Errorf("invalid campaign data: %w", err)
//	}
//
//	handler := NewCreateCampaignCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create campaign: %w", err)
//	}
type CreateCampaignCommand struct { //nolint:recvcheck //using for validation
	campaignID kernel.UUID
	actorID    kernel.UUID
	name       string
	slug       string
	dateStart  time.Time
	dateEnd    time.Time

	requireAgreement      bool
	operatorCanCreate     bool
	newDeliveryIfDisabled bool
	noteOperators         string
	noteUsers             string

	guard guard.ConstructorGuard
}

// NewCreateCampaignCommand creates a command to open a campaign.
// Behaviour flags default to true, matching the campaign aggregate defaults.
// Returns an error if the IDs are invalid, the name is empty or the window
// ends before it starts.
func NewCreateCampaignCommand(
	campaignID, actorID kernel.UUID, name, slug string, dateStart, dateEnd time.Time,
) (CreateCampaignCommand, error) {
	command := CreateCampaignCommand{
		requireAgreement:      true,
		operatorCanCreate:     true,
		newDeliveryIfDisabled: true,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCampaignID(campaignID),
		command.setActorID(actorID),
		command.setName(name),
		command.setWindow(dateStart, dateEnd),
	); err != nil {
		return CreateCampaignCommand{}, err
	}

	command.slug = slug
	return command, nil
}

// WithFlags overrides the campaign behaviour flags.
func (c CreateCampaignCommand) WithFlags(requireAgreement, operatorCanCreate, newDeliveryIfDisabled bool) CreateCampaignCommand {
	c.requireAgreement = requireAgreement
	c.operatorCanCreate = operatorCanCreate
	c.newDeliveryIfDisabled = newDeliveryIfDisabled
	return c
}

// WithNotes sets the free-text notes shown to operators and users.
func (c CreateCampaignCommand) WithNotes(operators, users string) CreateCampaignCommand {
	c.noteOperators = operators
	c.noteUsers = users
	return c
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCampaignCommandIsNotConstructed if validation fails.
func (c CreateCampaignCommand) Validate() error {
	return c.guard.Validate(ErrCreateCampaignCommandIsNotConstructed)
}

// CampaignID returns the unique identifier for the campaign.
func (c CreateCampaignCommand) CampaignID() kernel.UUID {
	return c.campaignID
}

// ActorID returns the identifier of the user performing the operation.
func (c CreateCampaignCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the campaign display name.
func (c CreateCampaignCommand) Name() string {
	return c.name
}

// Slug returns the URL-safe campaign identifier.
func (c CreateCampaignCommand) Slug() string {
	return c.slug
}

// DateStart returns the opening instant of the distribution window.
func (c CreateCampaignCommand) DateStart() time.Time {
	return c.dateStart
}

// DateEnd returns the closing instant of the distribution window.
func (c CreateCampaignCommand) DateEnd() time.Time {
	return c.dateEnd
}

// RequireAgreement reports whether recipients must confirm deliveries themselves.
func (c CreateCampaignCommand) RequireAgreement() bool {
	return c.requireAgreement
}

// OperatorCanCreate reports whether operators may create deliveries directly.
func (c CreateCampaignCommand) OperatorCanCreate() bool {
	return c.operatorCanCreate
}

// NewDeliveryIfDisabled reports whether a disabled delivery allows a replacement.
func (c CreateCampaignCommand) NewDeliveryIfDisabled() bool {
	return c.newDeliveryIfDisabled
}

// NoteOperators returns the notes shown to operators.
func (c CreateCampaignCommand) NoteOperators() string {
	return c.noteOperators
}

// NoteUsers returns the notes shown to recipients.
func (c CreateCampaignCommand) NoteUsers() string {
	return c.noteUsers
}

func (c *CreateCampaignCommand) setCampaignID(campaignID kernel.UUID) error {
	if err := campaignID.Validate(); err != nil {
		return err
	}

	c.campaignID = campaignID
	return nil
}

func (c *CreateCampaignCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateCampaignCommand) setName(name string) error {
	if name == "" {
		return ErrCampaignNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCampaignCommand) setWindow(dateStart, dateEnd time.Time) error {
	if !dateEnd.After(dateStart) {
		return ErrCampaignWindowInvalid
	}

	c.dateStart = dateStart
	c.dateEnd = dateEnd
	return nil
}
