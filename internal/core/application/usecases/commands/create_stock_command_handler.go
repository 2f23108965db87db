package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrDeliveryPointNotFound is returned when the referenced point does not exist.
var ErrDeliveryPointNotFound = errors.New("delivery point not found")

// CreateStockCommandHandler handles the business logic for stock allocation.
// Verifies the holding point before persisting.
type CreateStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewCreateStockCommandHandler creates a handler for stock allocation.
// Requires a StockUoWFactory for transactional persistence.
func NewCreateStockCommandHandler(uowFactory StockUoWFactory) CreateStockCommandHandler {
	return CreateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock allocation command.
// Confirms the delivery point exists, persists the stock and appends a
// "created" audit entry. Returns ErrDeliveryPointNotFound when the point is unknown.
func (h CreateStockCommandHandler) Handle(ctx context.Context, cmd CreateStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DeliveryPointRepository().Get(ctx, cmd.PointID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrDeliveryPointNotFound
		}
		return err
	}

	stock, err := good.NewStock(cmd.StockID(), cmd.PointID(), cmd.GoodID(), cmd.MaxNumber())
	if err != nil {
		return err
	}

	if err = uow.StockRepository().Add(ctx, stock); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "stock",
		EntityID:   stock.ID().String(),
		EntityRepr: stock.GoodID().String(),
		Action:     ports.AuditCreated,
		Message:    "stock allocated",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
