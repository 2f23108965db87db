package commands

import (
	"context"
	"time"

	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/ports"
)

// CreateGoodCommandHandler handles the business logic for registering goods.
type CreateGoodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateGoodCommandHandler creates a handler for good registration.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateGoodCommandHandler(uowFactory CatalogUoWFactory) CreateGoodCommandHandler {
	return CreateGoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the good registration command.
// Persists the good and appends a "created" audit entry. The owning category
// reference is enforced by the storage layer.
func (h CreateGoodCommandHandler) Handle(ctx context.Context, cmd CreateGoodCommand) error {
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

	g, err := good.NewGood(cmd.GoodID(), cmd.CategoryID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.GoodRepository().AddGood(ctx, g); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "good",
		EntityID:   g.ID().String(),
		EntityRepr: g.Name(),
		Action:     ports.AuditCreated,
		Message:    "good created",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
