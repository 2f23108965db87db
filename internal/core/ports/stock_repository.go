package ports

import (
	"context"

	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/domain/model/kernel"
)

// GoodRepository defines the persistence contract for the goods catalogue.
type GoodRepository interface {
	// AddCategory persists a new goods category.
	AddCategory(ctx context.Context, category *good.Category) error

	// AddGood persists a new good within its category.
	AddGood(ctx context.Context, g *good.Good) error

	// GetGood retrieves a good by its unique identifier.
	GetGood(ctx context.Context, id kernel.UUID) (*good.Good, error)
}

// StockRepository defines the persistence contract for stock availability
// records and their serialized identifiers.
type StockRepository interface {
	// Add persists a new stock record. The (delivery point, good) pair is
	// unique; the storage layer rejects duplicates.
	Add(ctx context.Context, stock *good.Stock) error

	// Get retrieves a stock record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*good.Stock, error)

	// GetByPointAndGood retrieves the stock record for a (delivery point,
	// good) pair. Returns nil without error when none exists.
	GetByPointAndGood(ctx context.Context, pointID, goodID kernel.UUID) (*good.Stock, error)

	// AddIdentifier persists a serialized unit identifier within a stock.
	AddIdentifier(ctx context.Context, identifier *good.StockIdentifier) error

	// GetIdentifier retrieves a stock identifier by its unique identifier.
	GetIdentifier(ctx context.Context, id kernel.UUID) (*good.StockIdentifier, error)

	// HasIdentifiers reports whether the stock carries any serialized
	// identifiers, making identifier selection mandatory for deliveries.
	HasIdentifiers(ctx context.Context, stockID kernel.UUID) (bool, error)

	// IdentifiersByStock retrieves all identifiers of a stock.
	IdentifiersByStock(ctx context.Context, stockID kernel.UUID) ([]*good.StockIdentifier, error)
}
