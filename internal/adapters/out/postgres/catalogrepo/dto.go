package catalogrepo

import (
	"github.com/google/uuid"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/ports"
)

// MenuItemDTO maps a menu item to the menu_items table. The table is owned
// by whoever maintains the menu; this adapter only reads from it.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Price       int64     `gorm:"not null"`
	Available   bool      `gorm:"not null;default:true"`
	PrepSeconds int       `gorm:"not null"`
}

// TableName returns the database table name for GORM.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func toSnapshot(dto MenuItemDTO) (ports.MenuItemSnapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.MenuItemSnapshot{}, err
	}

	return ports.MenuItemSnapshot{
		ID:          id,
		Name:        dto.Name,
		Price:       kernel.NewMoneyFromCents(dto.Price),
		Available:   dto.Available,
		PrepSeconds: dto.PrepSeconds,
	}, nil
}
