package campaign

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrCampaignIsNotConstructed is returned when a Campaign instance was not created
	// through the NewCampaign factory method.
	ErrCampaignIsNotConstructed = errors.New("Campaign must be created via NewCampaign constructor")
)

// slug must contain at least one alphabetic character.
var slugLetterPattern = regexp.MustCompile(`[a-zA-Z]`)

// Campaign represents a time-bounded distribution drive for goods and services.
// It is the aggregate root that scopes delivery points, stocks and deliveries.
//
// Campaign follows these invariants:
//   - Must have a valid unique identifier
//   - Name and slug are required; the slug contains at least one letter
//   - The distribution window end must not precede its start
//   - Can only be created through NewCampaign or RestoreCampaign
//
// Behaviour flags carry their persistence-level defaults: deliveries require a
// recipient agreement, operators may create deliveries, a disabled delivery
// may be replaced by a new one, and the campaign starts active.
type Campaign struct {
	id   kernel.UUID
	name string
	slug string

	dateStart time.Time
	dateEnd   time.Time

	requireAgreement      bool
	operatorCanCreate     bool
	newDeliveryIfDisabled bool
	isActive              bool

	noteOperators string
	noteUsers     string

	isConstructed bool
}

// NewCampaign creates a new Campaign with default behaviour flags.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: campaign display name (required, unique across campaigns)
//   - slug: URL-safe identifier (required, must contain at least one letter)
//   - dateStart, dateEnd: the distribution window
//
// Returns a validation error if any parameter is invalid.
func NewCampaign(id kernel.UUID, name, slug string, dateStart, dateEnd time.Time) (*Campaign, error) {
	c := &Campaign{
		requireAgreement:      true,
		operatorCanCreate:     true,
		newDeliveryIfDisabled: true,
		isActive:              true,
		isConstructed:         true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setSlug(slug),
		c.setWindow(dateStart, dateEnd),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCampaign reconstructs a Campaign from persistence.
// All fields, including behaviour flags and notes, are restored verbatim.
func RestoreCampaign(
	id kernel.UUID,
	name, slug string,
	dateStart, dateEnd time.Time,
	requireAgreement, operatorCanCreate, newDeliveryIfDisabled, isActive bool,
	noteOperators, noteUsers string,
) (*Campaign, error) {
	c, err := NewCampaign(id, name, slug, dateStart, dateEnd)
	if err != nil {
		return nil, err
	}

	c.requireAgreement = requireAgreement
	c.operatorCanCreate = operatorCanCreate
	c.newDeliveryIfDisabled = newDeliveryIfDisabled
	c.isActive = isActive
	c.noteOperators = noteOperators
	c.noteUsers = noteUsers
	return c, nil
}

// Validate ensures the Campaign was created through its constructor.
func (c *Campaign) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCampaignIsNotConstructed
	}
	return nil
}

// ID returns the campaign's unique identifier.
func (c *Campaign) ID() kernel.UUID {
	return c.id
}

// Name returns the campaign display name.
func (c *Campaign) Name() string {
	return c.name
}

// Slug returns the campaign's URL-safe identifier.
func (c *Campaign) Slug() string {
	return c.slug
}

// DateStart returns the beginning of the distribution window.
func (c *Campaign) DateStart() time.Time {
	return c.dateStart
}

// DateEnd returns the end of the distribution window.
func (c *Campaign) DateEnd() time.Time {
	return c.dateEnd
}

// RequireAgreement reports whether deliveries must be confirmed by the recipient.
func (c *Campaign) RequireAgreement() bool {
	return c.requireAgreement
}

// OperatorCanCreate reports whether operators may create deliveries directly.
func (c *Campaign) OperatorCanCreate() bool {
	return c.operatorCanCreate
}

// NewDeliveryIfDisabled reports whether a disabled delivery may be replaced
// by a new one for the same recipient and good.
func (c *Campaign) NewDeliveryIfDisabled() bool {
	return c.newDeliveryIfDisabled
}

// IsActive reports whether the campaign is active.
func (c *Campaign) IsActive() bool {
	return c.isActive
}

// NoteOperators returns the free-text notes addressed to operators.
func (c *Campaign) NoteOperators() string {
	return c.noteOperators
}

// NoteUsers returns the free-text notes addressed to end users.
func (c *Campaign) NoteUsers() string {
	return c.noteUsers
}

// IsInProgress reports whether the campaign is still running at the given
// instant. Only the end of the window is checked: a campaign is in progress
// until its end date passes, regardless of the start date.
func (c *Campaign) IsInProgress(now time.Time) bool {
	return now.Before(c.dateEnd)
}

// SetRequireAgreement toggles the recipient-confirmation requirement.
func (c *Campaign) SetRequireAgreement(v bool) {
	c.requireAgreement = v
}

// SetOperatorCanCreate toggles direct delivery creation by operators.
func (c *Campaign) SetOperatorCanCreate(v bool) {
	c.operatorCanCreate = v
}

// SetNewDeliveryIfDisabled toggles replacement of disabled deliveries.
func (c *Campaign) SetNewDeliveryIfDisabled(v bool) {
	c.newDeliveryIfDisabled = v
}

// SetNotes replaces the operator and user notes.
func (c *Campaign) SetNotes(operators, users string) {
	c.noteOperators = operators
	c.noteUsers = users
}

// Deactivate marks the campaign inactive. Deactivation is not reversible
// through the domain model.
func (c *Campaign) Deactivate() {
	c.isActive = false
}

func (c *Campaign) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Campaign) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Campaign) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugLetterPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q does not contain an alphabetic character", slug))
	}
	c.slug = slug
	return nil
}

func (c *Campaign) setWindow(dateStart, dateEnd time.Time) error {
	if dateStart.IsZero() {
		return errs.NewValueIsRequiredError("dateStart")
	}
	if dateEnd.IsZero() {
		return errs.NewValueIsRequiredError("dateEnd")
	}
	if dateEnd.Before(dateStart) {
		return errs.NewValueIsInvalidErrorWithCause("dateEnd",
			fmt.Errorf("end %s precedes start %s", dateEnd, dateStart))
	}
	c.dateStart = dateStart
	c.dateEnd = dateEnd
	return nil
}
