// Package goodrepo provides data transfer objects and mapping functions for
// the goods catalogue: categories and the goods inside them.
package goodrepo

import (
	"gooddelivery/internal/core/domain/model/good"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for good categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// GoodDTO represents the database structure for distributable goods.
// Removing a category removes the goods inside it.
type GoodDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"not null"`
}

// TableName specifies the database table name for good entities.
func (GoodDTO) TableName() string {
	return "goods"
}

func categoryFromDomain(c *good.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func goodFromDomain(g *good.Good) GoodDTO {
	return GoodDTO{
		ID:         g.ID().Bytes(),
		CategoryID: g.CategoryID().Bytes(),
		Name:       g.Name(),
	}
}

func goodToDomain(dto GoodDTO) (*good.Good, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return good.NewGood(id, categoryID, dto.Name)
}
