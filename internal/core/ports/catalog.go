package ports

import (
	"context"

	"foodtruck/internal/core/domain/model/kernel"
)

// MenuItemSnapshot is the point-in-time view of a catalog item used when an
// order captures its name and price. The core never edits the catalog.
type MenuItemSnapshot struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	Available   bool
	PrepSeconds int
}

// MenuCatalog is the external collaborator that owns the menu. The core only
// reads price/availability snapshots from it at order-creation time.
type MenuCatalog interface {
	// Item looks up a menu item by id.
	// Returns ObjectNotFoundError for unknown ids.
	Item(ctx context.Context, id kernel.UUID) (MenuItemSnapshot, error)
}
