package good

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"
)

// Category groups goods and services of the same kind.
type Category struct {
	id          kernel.UUID
	name        string
	description string
}

// NewCategory creates a goods category.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
	}, nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the optional description.
func (c *Category) Description() string {
	return c.description
}

// Good is any kind of product or service that can be allocated to a user.
// A good belongs to exactly one category.
type Good struct {
	id         kernel.UUID
	categoryID kernel.UUID
	name       string
}

// NewGood creates a good within a category.
func NewGood(id, categoryID kernel.UUID, name string) (*Good, error) {
	if err := errors.Join(id.Validate(), categoryID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Good{
		id:         id,
		categoryID: categoryID,
		name:       name,
	}, nil
}

// ID returns the good's unique identifier.
func (g *Good) ID() kernel.UUID {
	return g.id
}

// CategoryID returns the identifier of the owning category.
func (g *Good) CategoryID() kernel.UUID {
	return g.categoryID
}

// Name returns the good's name.
func (g *Good) Name() string {
	return g.name
}
