package good

import (
	"errors"
	"fmt"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

var (
	// ErrStockIsNotConstructed is returned when a Stock instance was not created
	// through the NewStock factory method.
	ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")
)

// Stock is the availability record of a Good at a DeliveryPoint. The pair
// (delivery point, good) is unique. MaxNumber caps the total number of units
// that may be delivered against the stock; zero means unlimited.
type Stock struct {
	id              kernel.UUID
	deliveryPointID kernel.UUID
	goodID          kernel.UUID
	maxNumber       int

	isConstructed bool
}

// NewStock creates a stock record for a (delivery point, good) pair.
// maxNumber must not be negative; zero means unlimited.
func NewStock(id, deliveryPointID, goodID kernel.UUID, maxNumber int) (*Stock, error) {
	s := &Stock{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setDeliveryPointID(deliveryPointID),
		s.setGoodID(goodID),
		s.setMaxNumber(maxNumber),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Stock was created through its constructor.
func (s *Stock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockIsNotConstructed
	}
	return nil
}

// ID returns the stock's unique identifier.
func (s *Stock) ID() kernel.UUID {
	return s.id
}

// DeliveryPointID returns the point holding the stock.
func (s *Stock) DeliveryPointID() kernel.UUID {
	return s.deliveryPointID
}

// GoodID returns the stocked good's identifier.
func (s *Stock) GoodID() kernel.UUID {
	return s.goodID
}

// MaxNumber returns the delivery cap for the stock; zero means unlimited.
func (s *Stock) MaxNumber() int {
	return s.maxNumber
}

// IsUnlimited reports whether the stock carries no delivery cap.
func (s *Stock) IsUnlimited() bool {
	return s.maxNumber == 0
}

func (s *Stock) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stock) setDeliveryPointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.deliveryPointID = id
	return nil
}

func (s *Stock) setGoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.goodID = id
	return nil
}

func (s *Stock) setMaxNumber(maxNumber int) error {
	if maxNumber < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxNumber",
			fmt.Errorf("%d is negative", maxNumber))
	}
	s.maxNumber = maxNumber
	return nil
}

// StockIdentifier is a specific serialized unit within a stock, such as a
// tracked serial number. When a stock carries identifiers, every delivery
// against it must reference one.
type StockIdentifier struct {
	id      kernel.UUID
	stockID kernel.UUID
	code    string
}

// NewStockIdentifier creates an identifier belonging to a stock.
func NewStockIdentifier(id, stockID kernel.UUID, code string) (*StockIdentifier, error) {
	if err := errors.Join(id.Validate(), stockID.Validate()); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	return &StockIdentifier{
		id:      id,
		stockID: stockID,
		code:    code,
	}, nil
}

// ID returns the identifier's unique identifier.
func (i *StockIdentifier) ID() kernel.UUID {
	return i.id
}

// StockID returns the owning stock's identifier.
func (i *StockIdentifier) StockID() kernel.UUID {
	return i.stockID
}

// Code returns the serialized unit code.
func (i *StockIdentifier) Code() string {
	return i.code
}
