package delivery

import (
	"errors"
	"fmt"
	"time"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is the central aggregate: a single allocation of a quantity of a
// good to a recipient, tracked from registration through confirmation,
// return or disablement.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier, chosen point, recipient and good
//   - The chosen delivery point is immutable once set
//   - Quantity is never negative; zero is rejected on submission
//   - Lifecycle transitions (delivered, returned, disabled) each record the
//     acting point, the acting user and the instant, and are never undone
//
// The remaining consistency rules (stock ceiling, identifier requirements,
// identifier collisions) span multiple records and are enforced by the
// validation engine on every submission.
type Delivery struct {
	id kernel.UUID

	// campaignID is resolved from the chosen point on first submission
	// when absent.
	campaignID *kernel.UUID

	chosenPointID kernel.UUID
	recipientID   kernel.UUID
	goodID        kernel.UUID
	quantity      int

	// stockIdentifierID references a serialized unit within the stock.
	stockIdentifierID *kernel.UUID

	// manualIdentifier is an operator-entered code used when the stock
	// carries no identifier list, or to double-check a selected one.
	manualIdentifier string

	// deliveryPointID is the concrete point the good is handed out from;
	// nil until finalized.
	deliveryPointID *kernel.UUID

	deliveryDate  *time.Time
	deliveredByID *kernel.UUID

	disabledPointID *kernel.UUID
	disabledDate    *time.Time
	disabledByID    *kernel.UUID

	returnedPointID *kernel.UUID
	returnDate      *time.Time
	returnedToID    *kernel.UUID

	notes string

	createdAt time.Time

	isConstructed bool
}

// NewDelivery creates a new Delivery in its initial state.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - chosenPointID: the point the recipient is expected at (immutable)
//   - recipientID: the user receiving the good
//   - goodID: the allocated good
//   - quantity: number of units (must not be negative; zero is rejected
//     at submission time by the validation engine)
func NewDelivery(id, chosenPointID, recipientID, goodID kernel.UUID, quantity int) (*Delivery, error) {
	d := &Delivery{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setChosenPointID(chosenPointID),
		d.setRecipientID(recipientID),
		d.setGoodID(goodID),
		d.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, including any
// recorded lifecycle transitions.
func RestoreDelivery(
	id, chosenPointID, recipientID, goodID kernel.UUID,
	quantity int,
	campaignID, stockIdentifierID *kernel.UUID,
	manualIdentifier string,
	deliveryPointID *kernel.UUID,
	deliveryDate *time.Time, deliveredByID *kernel.UUID,
	disabledDate *time.Time, disabledPointID, disabledByID *kernel.UUID,
	returnDate *time.Time, returnedPointID, returnedToID *kernel.UUID,
	notes string,
	createdAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, chosenPointID, recipientID, goodID, quantity)
	if err != nil {
		return nil, err
	}

	d.campaignID = campaignID
	d.stockIdentifierID = stockIdentifierID
	d.manualIdentifier = manualIdentifier
	d.deliveryPointID = deliveryPointID
	d.deliveryDate = deliveryDate
	d.deliveredByID = deliveredByID
	d.disabledDate = disabledDate
	d.disabledPointID = disabledPointID
	d.disabledByID = disabledByID
	d.returnDate = returnDate
	d.returnedPointID = returnedPointID
	d.returnedToID = returnedToID
	d.notes = notes
	d.createdAt = createdAt
	return d, nil
}

// Validate ensures the Delivery was created through its constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CampaignID returns the owning campaign's identifier, or nil before the
// campaign has been resolved from the chosen point.
func (d *Delivery) CampaignID() *kernel.UUID {
	return d.campaignID
}

// ChosenPointID returns the delivery point the recipient is expected at.
func (d *Delivery) ChosenPointID() kernel.UUID {
	return d.chosenPointID
}

// RecipientID returns the receiving user's identifier.
func (d *Delivery) RecipientID() kernel.UUID {
	return d.recipientID
}

// GoodID returns the allocated good's identifier.
func (d *Delivery) GoodID() kernel.UUID {
	return d.goodID
}

// Quantity returns the number of allocated units.
func (d *Delivery) Quantity() int {
	return d.quantity
}

// StockIdentifierID returns the referenced stock identifier, or nil.
func (d *Delivery) StockIdentifierID() *kernel.UUID {
	return d.stockIdentifierID
}

// ManualIdentifier returns the operator-entered identifier code, or the
// empty string when none was entered.
func (d *Delivery) ManualIdentifier() string {
	return d.manualIdentifier
}

// DeliveryPointID returns the concrete hand-out point, or nil until finalized.
func (d *Delivery) DeliveryPointID() *kernel.UUID {
	return d.deliveryPointID
}

// DeliveryDate returns the hand-out instant, or nil.
func (d *Delivery) DeliveryDate() *time.Time {
	return d.deliveryDate
}

// DeliveredByID returns the recorded delivering actor, or nil.
func (d *Delivery) DeliveredByID() *kernel.UUID {
	return d.deliveredByID
}

// DisabledDate returns the disablement instant, or nil.
func (d *Delivery) DisabledDate() *time.Time {
	return d.disabledDate
}

// DisabledPointID returns the point that disabled the record, or nil.
func (d *Delivery) DisabledPointID() *kernel.UUID {
	return d.disabledPointID
}

// DisabledByID returns the actor that disabled the record, or nil.
func (d *Delivery) DisabledByID() *kernel.UUID {
	return d.disabledByID
}

// ReturnDate returns the return instant, or nil.
func (d *Delivery) ReturnDate() *time.Time {
	return d.returnDate
}

// ReturnedPointID returns the point that accepted the return, or nil.
func (d *Delivery) ReturnedPointID() *kernel.UUID {
	return d.returnedPointID
}

// ReturnedToID returns the actor that accepted the return, or nil.
func (d *Delivery) ReturnedToID() *kernel.UUID {
	return d.returnedToID
}

// Notes returns the free-text notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// CreatedAt returns the creation instant.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// ResolveCampaign binds the delivery to a campaign. It is a no-op when the
// campaign is already set, mirroring the resolution on submission.
func (d *Delivery) ResolveCampaign(campaignID kernel.UUID) error {
	if err := campaignID.Validate(); err != nil {
		return err
	}
	if d.campaignID == nil {
		d.campaignID = &campaignID
	}
	return nil
}

// SetQuantity replaces the allocated quantity. Negative values are rejected;
// zero is representable but rejected at submission time.
func (d *Delivery) SetQuantity(quantity int) error {
	return d.setQuantity(quantity)
}

// SetStockIdentifier references a serialized unit from the stock, or clears
// the reference when nil is given.
func (d *Delivery) SetStockIdentifier(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	d.stockIdentifierID = id
	return nil
}

// SetManualIdentifier records the operator-entered identifier code.
func (d *Delivery) SetManualIdentifier(code string) {
	d.manualIdentifier = code
}

// SetDeliveryPoint finalizes the concrete hand-out point.
func (d *Delivery) SetDeliveryPoint(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}
	d.deliveryPointID = &pointID
	return nil
}

// SetNotes replaces the free-text notes.
func (d *Delivery) SetNotes(notes string) {
	d.notes = notes
}

// RecordDeliveringOperator records the operator in charge of the hand-out
// without marking the good as delivered. Only legal while waiting.
func (d *Delivery) RecordDeliveringOperator(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	if !d.IsWaiting() {
		return NewStateTransitionError(d.Status(), d.Status())
	}
	d.deliveredByID = &operatorID
	return nil
}

// IsWaiting reports whether nothing has been recorded against the delivery:
// no hand-out, no return, no disablement.
func (d *Delivery) IsWaiting() bool {
	return d.deliveryDate == nil && d.returnDate == nil && d.disabledDate == nil
}

// CanBeReturned reports whether the good can be given back: it was handed
// out and has not been returned yet. A disablement does not block a return.
func (d *Delivery) CanBeReturned() bool {
	return d.deliveryDate != nil && d.returnDate == nil
}

// CanBeDisabled reports whether the record can be withdrawn. Disabling is
// unconditional for any record that is not already disabled.
func (d *Delivery) CanBeDisabled() bool {
	return d.disabledDate == nil
}

// CanBeDeleted reports whether the record may be removed. Deletion is only
// allowed before hand-out and disablement, and is further blocked when the
// record was prefilled by the system (the campaign forbids operator-created
// deliveries) and it is the recipient's sole delivery for this good, point
// and campaign. recipientDeliveries is the current count for that tuple.
func (d *Delivery) CanBeDeleted(c *campaign.Campaign, recipientDeliveries int) bool {
	if d.deliveryDate != nil || d.disabledDate != nil {
		return false
	}
	if c == nil {
		return false
	}
	if !c.OperatorCanCreate() && recipientDeliveries == 1 {
		return false
	}
	return true
}

// CanBeMarkedByOperator reports whether an operator may confirm the hand-out
// without recipient involvement: the campaign does not require an agreement,
// a delivering operator is recorded and the record is still waiting.
func (d *Delivery) CanBeMarkedByOperator(c *campaign.Campaign) bool {
	if c == nil {
		return false
	}
	return !c.RequireAgreement() && d.deliveredByID != nil && d.IsWaiting()
}

// CanBeMarkedByUser reports whether the recipient may confirm the hand-out:
// a concrete point is set, the campaign is in progress and requires an
// agreement, and the record is still waiting.
func (d *Delivery) CanBeMarkedByUser(c *campaign.Campaign, now time.Time) bool {
	if d.deliveryPointID == nil {
		return false
	}
	if c == nil || !c.IsInProgress(now) || !c.RequireAgreement() {
		return false
	}
	return d.IsWaiting()
}

// Status derives the current lifecycle state. Precedence is fixed:
// disabled wins over returned, returned over delivered; a record without a
// concrete point is pending, an untouched one is waiting.
func (d *Delivery) Status() Status {
	switch {
	case d.disabledDate != nil:
		return Disabled
	case d.returnDate != nil:
		return Returned
	case d.deliveryDate != nil:
		return Delivered
	case d.deliveryPointID == nil:
		return Pending
	case d.IsWaiting():
		return Waiting
	default:
		return Unknown
	}
}

// MarkDelivered records the hand-out of the good at the given point by the
// given actor. Legal only while the record is waiting.
func (d *Delivery) MarkDelivered(at time.Time, pointID, actorID kernel.UUID) (StateChange, error) {
	if err := errors.Join(pointID.Validate(), actorID.Validate()); err != nil {
		return StateChange{}, err
	}
	if !d.IsWaiting() {
		return StateChange{}, NewStateTransitionError(d.Status(), Delivered)
	}

	from := d.Status()
	d.deliveryDate = &at
	d.deliveryPointID = &pointID
	d.deliveredByID = &actorID
	return d.newStateChange(from, at, actorID), nil
}

// Return records the good being given back at the given point to the given
// actor. Legal only after a hand-out and before any return, regardless of
// disablement.
func (d *Delivery) Return(at time.Time, pointID, actorID kernel.UUID) (StateChange, error) {
	if err := errors.Join(pointID.Validate(), actorID.Validate()); err != nil {
		return StateChange{}, err
	}
	if !d.CanBeReturned() {
		return StateChange{}, NewStateTransitionError(d.Status(), Returned)
	}

	from := d.Status()
	d.returnDate = &at
	d.returnedPointID = &pointID
	d.returnedToID = &actorID
	return d.newStateChange(from, at, actorID), nil
}

// Disable withdraws the record at the given point by the given actor.
// Legal from any state that is not already disabled.
func (d *Delivery) Disable(at time.Time, pointID, actorID kernel.UUID) (StateChange, error) {
	if err := errors.Join(pointID.Validate(), actorID.Validate()); err != nil {
		return StateChange{}, err
	}
	if !d.CanBeDisabled() {
		return StateChange{}, NewStateTransitionError(d.Status(), Disabled)
	}

	from := d.Status()
	d.disabledDate = &at
	d.disabledPointID = &pointID
	d.disabledByID = &actorID
	return d.newStateChange(from, at, actorID), nil
}

func (d *Delivery) newStateChange(from Status, at time.Time, actorID kernel.UUID) StateChange {
	return StateChange{
		DeliveryID: d.id,
		From:       from,
		To:         d.Status(),
		ActorID:    actorID,
		OccurredAt: at,
	}
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setChosenPointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.chosenPointID = id
	return nil
}

func (d *Delivery) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.recipientID = id
	return nil
}

func (d *Delivery) setGoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.goodID = id
	return nil
}

func (d *Delivery) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	d.quantity = quantity
	return nil
}
