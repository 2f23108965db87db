package delivery

import (
	"errors"
	"fmt"
)

// Sentinel errors for the delivery validation rules. Each violation is
// surfaced as a typed error unwrapping to one of these values, so callers
// classify failures with errors.Is. Every violation aborts the whole write.
var (
	ErrZeroQuantity               = errors.New("delivery quantity cannot be zero")
	ErrInvalidIdentifierQuantity  = errors.New("quantity bound to an identifier cannot exceed one")
	ErrStockExceeded              = errors.New("maximum number of deliveries reached for this stock")
	ErrMissingIdentifierSelection = errors.New("an identifier must be selected from the stock list")
	ErrIdentifierMismatch         = errors.New("identifiers do not match")
	ErrDuplicateDelivery          = errors.New("a delivery of this good already exists for this campaign and identifier")
	ErrInvalidStateTransition     = errors.New("state transition is not allowed")
)

// ZeroQuantityError reports a delivery submitted with quantity zero.
type ZeroQuantityError struct {
	DeliveryID string
}

// NewZeroQuantityError creates a ZeroQuantityError for the given delivery.
func NewZeroQuantityError(deliveryID string) *ZeroQuantityError {
	return &ZeroQuantityError{DeliveryID: deliveryID}
}

func (e *ZeroQuantityError) Error() string {
	return fmt.Sprintf("%s: delivery %s", ErrZeroQuantity, e.DeliveryID)
}

func (e *ZeroQuantityError) Unwrap() error {
	return ErrZeroQuantity
}

// InvalidIdentifierQuantityError reports a manual identifier combined with a
// quantity greater than one. An identifier always denotes a single unit.
type InvalidIdentifierQuantityError struct {
	Quantity int
}

// NewInvalidIdentifierQuantityError creates an InvalidIdentifierQuantityError.
func NewInvalidIdentifierQuantityError(quantity int) *InvalidIdentifierQuantityError {
	return &InvalidIdentifierQuantityError{Quantity: quantity}
}

func (e *InvalidIdentifierQuantityError) Error() string {
	return fmt.Sprintf("%s: quantity is %d", ErrInvalidIdentifierQuantity, e.Quantity)
}

func (e *InvalidIdentifierQuantityError) Unwrap() error {
	return ErrInvalidIdentifierQuantity
}

// StockExceededError reports that a creation would push deliveries past the
// stock cap.
type StockExceededError struct {
	MaxNumber int
}

// NewStockExceededError creates a StockExceededError for a capped stock.
func NewStockExceededError(maxNumber int) *StockExceededError {
	return &StockExceededError{MaxNumber: maxNumber}
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("%s: %d", ErrStockExceeded, e.MaxNumber)
}

func (e *StockExceededError) Unwrap() error {
	return ErrStockExceeded
}

// MissingIdentifierSelectionError reports a delivery against a serialized
// stock that references no stock identifier.
type MissingIdentifierSelectionError struct {
	StockID string
}

// NewMissingIdentifierSelectionError creates a MissingIdentifierSelectionError.
func NewMissingIdentifierSelectionError(stockID string) *MissingIdentifierSelectionError {
	return &MissingIdentifierSelectionError{StockID: stockID}
}

func (e *MissingIdentifierSelectionError) Error() string {
	return fmt.Sprintf("%s: stock %s", ErrMissingIdentifierSelection, e.StockID)
}

func (e *MissingIdentifierSelectionError) Unwrap() error {
	return ErrMissingIdentifierSelection
}

// IdentifierMismatchError reports disagreement between the selected stock
// identifier and the manually entered identifier string.
type IdentifierMismatchError struct {
	Selected string
	Manual   string
}

// NewIdentifierMismatchError creates an IdentifierMismatchError.
func NewIdentifierMismatchError(selected, manual string) *IdentifierMismatchError {
	return &IdentifierMismatchError{Selected: selected, Manual: manual}
}

func (e *IdentifierMismatchError) Error() string {
	return fmt.Sprintf("%s: selected %q, manual %q", ErrIdentifierMismatch, e.Selected, e.Manual)
}

func (e *IdentifierMismatchError) Unwrap() error {
	return ErrIdentifierMismatch
}

// DuplicateDeliveryError reports a collision with an existing delivery for
// the same good, campaign and identifier.
type DuplicateDeliveryError struct {
	GoodID     string
	CampaignID string
	Identifier string
}

// NewDuplicateDeliveryError creates a DuplicateDeliveryError.
func NewDuplicateDeliveryError(goodID, campaignID, identifier string) *DuplicateDeliveryError {
	return &DuplicateDeliveryError{GoodID: goodID, CampaignID: campaignID, Identifier: identifier}
}

func (e *DuplicateDeliveryError) Error() string {
	return fmt.Sprintf("%s: good %s, campaign %s, identifier %q",
		ErrDuplicateDelivery, e.GoodID, e.CampaignID, e.Identifier)
}

func (e *DuplicateDeliveryError) Unwrap() error {
	return ErrDuplicateDelivery
}

// StateTransitionError reports an attempt to perform a lifecycle transition
// from a state that does not allow it.
type StateTransitionError struct {
	From Status
	To   Status
}

// NewStateTransitionError creates a StateTransitionError.
func NewStateTransitionError(from, to Status) *StateTransitionError {
	return &StateTransitionError{From: from, To: to}
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStateTransition, e.From, e.To)
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
