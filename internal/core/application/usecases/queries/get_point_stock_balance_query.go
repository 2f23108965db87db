package queries

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/guard"
)

var ErrGetPointStockBalanceQueryIsNotConstructed = errors.New(
	"GetPointStockBalanceQuery must be created via NewGetPointStockBalanceQuery constructor",
)

// GetPointStockBalanceQuery retrieves the stock situation of one delivery
// point: how much of each good is allocated and how much is already booked.
//
// Example:
//
//	query, err := NewGetPointStockBalanceQuery(pointID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	balances, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stock balance: %w", err)
//	}
//	for _, b := range balances {
//	    fmt.Printf("%s: %d booked of %d\n", b.GoodName, b.Booked, b.MaxNumber)
//	}
type GetPointStockBalanceQuery struct {
	pointID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPointStockBalanceQuery creates a query for one point's stock balance.
// Returns an error if the point ID is invalid.
func NewGetPointStockBalanceQuery(pointID kernel.UUID) (GetPointStockBalanceQuery, error) {
	if err := pointID.Validate(); err != nil {
		return GetPointStockBalanceQuery{}, err
	}

	return GetPointStockBalanceQuery{
		pointID: pointID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPointStockBalanceQueryIsNotConstructed if validation fails.
func (q GetPointStockBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetPointStockBalanceQueryIsNotConstructed)
}

// PointID returns the delivery point whose stocks are listed.
func (q GetPointStockBalanceQuery) PointID() kernel.UUID {
	return q.pointID
}

// GetPointStockBalanceQueryResponse represents the balance of one stock.
// Booked counts every booking of the good across the whole system, matching
// the ceiling applied when new bookings are validated. Remaining is nil for
// unlimited stocks.
type GetPointStockBalanceQueryResponse struct {
	StockID   kernel.UUID
	GoodName  string
	MaxNumber int
	Booked    int
	Remaining *int
}
