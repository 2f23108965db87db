package services

import (
	"context"

	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/domain/model/kernel"
)

// PointReader provides the delivery-point lookup the validator needs to
// resolve a delivery's campaign.
type PointReader interface {
	Get(ctx context.Context, id kernel.UUID) (*campaign.DeliveryPoint, error)
}

// StockReader provides the stock lookups the validator needs for the ceiling
// and identifier checks. GetByPointAndGood returns nil without error when no
// stock record exists for the pair.
type StockReader interface {
	GetByPointAndGood(ctx context.Context, pointID, goodID kernel.UUID) (*good.Stock, error)
	HasIdentifiers(ctx context.Context, stockID kernel.UUID) (bool, error)
	GetIdentifier(ctx context.Context, id kernel.UUID) (*good.StockIdentifier, error)
}

// DeliveryStore provides the delivery reads and writes the validator needs.
// ExistsCollision reports whether another delivery for the same good and
// campaign shares the given non-null stock identifier or non-null manual
// identifier, excluding excludeID when non-nil.
type DeliveryStore interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error
	CountByGood(ctx context.Context, goodID kernel.UUID) (int, error)
	ExistsCollision(ctx context.Context, goodID, campaignID kernel.UUID,
		stockIdentifierID *kernel.UUID, manualIdentifier string, excludeID *kernel.UUID) (bool, error)
}

// DeliveryValidator is the domain service guarding every delivery write.
// Submit runs the full consistency check chain against the current state of
// related records and persists the delivery only when every check passes.
// Any violated rule aborts the entire write with a typed domain error; there
// is no partial failure.
//
// Check order is fixed:
//  1. campaign resolution from the chosen point when absent
//  2. quantity must not be zero
//  3. with a concrete delivery point set:
//     a. a manual identifier binds the quantity to one
//     b. the stock ceiling is enforced on first persistence only
//     c. a serialized stock requires a selected identifier
//     d. selected and manual identifiers must agree
//  4. identifier collisions against existing deliveries for the same good
//     and campaign, excluding the record's own prior version on update
//
// Concurrent submissions racing on the same stock or identifier are
// serialized by the storage layer; these checks are the fast-fail layer in
// front of the database constraints.
type DeliveryValidator struct {
	points     PointReader
	stocks     StockReader
	deliveries DeliveryStore
}

// NewDeliveryValidator creates a validator over the given collaborators.
func NewDeliveryValidator(points PointReader, stocks StockReader, deliveries DeliveryStore) DeliveryValidator {
	return DeliveryValidator{
		points:     points,
		stocks:     stocks,
		deliveries: deliveries,
	}
}

// Submit validates and persists a delivery. isNew selects first persistence
// (Add, with the stock-ceiling check) versus update (Update, with the record
// excluded from its own collision check).
func (v DeliveryValidator) Submit(ctx context.Context, d *delivery.Delivery, isNew bool) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := v.resolveCampaign(ctx, d); err != nil {
		return err
	}

	if d.Quantity() == 0 {
		return delivery.NewZeroQuantityError(d.ID().String())
	}

	if d.DeliveryPointID() != nil {
		if err := v.checkStockMax(ctx, d, isNew); err != nil {
			return err
		}
		if err := v.checkIdentificationCode(ctx, d); err != nil {
			return err
		}
		if err := v.validateStockIdentifier(ctx, d); err != nil {
			return err
		}
	}

	if err := v.checkCollisions(ctx, d, isNew); err != nil {
		return err
	}

	if isNew {
		return v.deliveries.Add(ctx, d)
	}
	return v.deliveries.Update(ctx, d)
}

func (v DeliveryValidator) resolveCampaign(ctx context.Context, d *delivery.Delivery) error {
	if d.CampaignID() != nil {
		return nil
	}

	point, err := v.points.Get(ctx, d.ChosenPointID())
	if err != nil {
		return err
	}
	return d.ResolveCampaign(point.CampaignID())
}

// checkStockMax rejects a manual identifier with quantity above one, then
// enforces the stock delivery cap. The cap counts deliveries of the good
// across the whole system, not per stock row, matching the observed
// behaviour of the admitting system.
func (v DeliveryValidator) checkStockMax(ctx context.Context, d *delivery.Delivery, isNew bool) error {
	if d.ManualIdentifier() != "" && d.Quantity() > 1 {
		return delivery.NewInvalidIdentifierQuantityError(d.Quantity())
	}

	if !isNew {
		return nil
	}

	stock, err := v.stocks.GetByPointAndGood(ctx, *d.DeliveryPointID(), d.GoodID())
	if err != nil {
		return err
	}
	if stock == nil {
		return nil
	}

	count, err := v.deliveries.CountByGood(ctx, d.GoodID())
	if err != nil {
		return err
	}

	if stock.MaxNumber() > 0 && stock.MaxNumber()-count < d.Quantity() {
		return delivery.NewStockExceededError(stock.MaxNumber())
	}
	return nil
}

func (v DeliveryValidator) checkIdentificationCode(ctx context.Context, d *delivery.Delivery) error {
	stock, err := v.stocks.GetByPointAndGood(ctx, *d.DeliveryPointID(), d.GoodID())
	if err != nil {
		return err
	}
	if stock == nil {
		return nil
	}

	serialized, err := v.stocks.HasIdentifiers(ctx, stock.ID())
	if err != nil {
		return err
	}
	if serialized && d.StockIdentifierID() == nil {
		return delivery.NewMissingIdentifierSelectionError(stock.ID().String())
	}
	return nil
}

func (v DeliveryValidator) validateStockIdentifier(ctx context.Context, d *delivery.Delivery) error {
	if d.StockIdentifierID() == nil {
		return nil
	}

	ident, err := v.stocks.GetIdentifier(ctx, *d.StockIdentifierID())
	if err != nil {
		return err
	}

	if d.ManualIdentifier() == "" || d.ManualIdentifier() != ident.Code() {
		return delivery.NewIdentifierMismatchError(ident.Code(), d.ManualIdentifier())
	}
	return nil
}

func (v DeliveryValidator) checkCollisions(ctx context.Context, d *delivery.Delivery, isNew bool) error {
	if d.StockIdentifierID() == nil && d.ManualIdentifier() == "" {
		return nil
	}

	var excludeID *kernel.UUID
	if !isNew {
		id := d.ID()
		excludeID = &id
	}

	exists, err := v.deliveries.ExistsCollision(ctx,
		d.GoodID(), *d.CampaignID(), d.StockIdentifierID(), d.ManualIdentifier(), excludeID)
	if err != nil {
		return err
	}

	if exists {
		identifier := d.ManualIdentifier()
		if identifier == "" && d.StockIdentifierID() != nil {
			identifier = d.StockIdentifierID().String()
		}
		return delivery.NewDuplicateDeliveryError(
			d.GoodID().String(), d.CampaignID().String(), identifier)
	}
	return nil
}
