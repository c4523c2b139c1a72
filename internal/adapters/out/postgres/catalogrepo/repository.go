// Package catalogrepo implements the menu catalog port over PostgreSQL.
package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/ports"
	"foodtruck/internal/pkg/errs"
)

var _ ports.MenuCatalog = (*GormMenuCatalog)(nil)

// GormMenuCatalog is a read-only GORM implementation of the MenuCatalog port.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GormMenuCatalog instance.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Item looks up a single menu item by id.
func (c *GormMenuCatalog) Item(ctx context.Context, id kernel.UUID) (ports.MenuItemSnapshot, error) {
	var dto MenuItemDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuItemSnapshot{}, errs.NewObjectNotFoundError("menu item", id)
		}
		return ports.MenuItemSnapshot{}, err
	}

	return toSnapshot(dto)
}
