package commands

import (
	"context"
	"time"

	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/ports"
)

// CreateCategoryCommandHandler handles the business logic for registering
// goods categories.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category registration.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category registration command.
// Persists the category and appends a "created" audit entry.
func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
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

	category, err := good.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.GoodRepository().AddCategory(ctx, category); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEntry{
		ActorID:    cmd.ActorID().String(),
		EntityType: "category",
		EntityID:   category.ID().String(),
		EntityRepr: category.Name(),
		Action:     ports.AuditCreated,
		Message:    "category created",
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
