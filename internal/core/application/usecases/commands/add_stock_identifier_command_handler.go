package commands

import (
	"context"
	"errors"
	"time"

	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"
)

// ErrStockNotFound is returned when the referenced stock does not exist.
var ErrStockNotFound = errors.New("stock not found")

// AddStockIdentifierCommandHandler handles the registration of serialized
// stock units. Verifies the owning stock before persisting.
type AddStockIdentifierCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAddStockIdentifierCommandHandler creates a handler for identifier registration.
// Requires a StockUoWFactory for transactional persistence.
func NewAddStockIdentifierCommandHandler(uowFactory StockUoWFactory) AddStockIdentifierCommandHandler {
	return AddStockIdentifierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the identifier registration command.
// Confirms the stock exists, persists the identifier and appends a "created"
// audit entry. Returns ErrStockNotFound when the stock is unknown.
func (h AddStockIdentifierCommandHandler) Handle(ctx context.Context, cmd AddStockIdentifierCommand) error {
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

	if _, err := uow.StockRepository().Get(ctx, cmd.StockID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrStockNotFound
		}
		return err
	}

	identifier, err := good.NewStockIdentifier(cmd.IdentifierID(), cmd.StockID(), cmd.Code())
	if err != nil {
		return err
	}

	if err = uow.StockRepository().AddIdentifier(ctx, identifier); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "stock_identifier",
		EntityID:   identifier.ID().String(),
		EntityRepr: identifier.Code(),
		Action:     ports.AuditCreated,
		Message:    "stock identifier registered",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
