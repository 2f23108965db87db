package queries

import (
	"context"

	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPointStockBalanceQueryHandler retrieves the stock balance of a delivery
// point from the database.
type GetPointStockBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetPointStockBalanceQueryHandler creates a handler for stock balance queries.
// Requires a GORM database connection for query execution.
func NewGetPointStockBalanceQueryHandler(db *gorm.DB) GetPointStockBalanceQueryHandler {
	return GetPointStockBalanceQueryHandler{db: db}
}

// Handle executes the query to list the point's stocks with booking counts.
// Results are sorted by good name for consistent output.
func (h GetPointStockBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetPointStockBalanceQuery,
) ([]GetPointStockBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	balances := make([]GetPointStockBalanceQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			g.name,
			s.max_number,
			(SELECT COUNT(*) FROM deliveries d WHERE d.good_id = s.good_id)
		FROM stocks s
		JOIN goods g ON g.id = s.good_id
		WHERE s.delivery_point_id = ?
		ORDER BY g.name
	`, query.PointID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPointStockBalanceQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.GoodName,
			&resp.MaxNumber,
			&resp.Booked,
		)
		if err != nil {
			return nil, err
		}

		stockID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.StockID = stockID

		if resp.MaxNumber > 0 {
			remaining := resp.MaxNumber - resp.Booked
			if remaining < 0 {
				remaining = 0
			}
			resp.Remaining = &remaining
		}

		balances = append(balances, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}
