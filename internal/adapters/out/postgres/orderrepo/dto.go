// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows, and owns
// the day-keyed counter that allocates sequential order numbers.
package orderrepo

import (
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns store cents. Status is indexed because every projection
// filters on it.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       int
	CustomerName string
	Status       int `gorm:"index"`
	Subtotal     int64
	Tax          int64
	Total        int64
	Paid         bool
	Notes        string
	CreatedAt    time.Time `gorm:"index"`
	ReadyAt      *time.Time
	CompletedAt  *time.Time
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line with its catalog
// snapshots. Lines are immutable after creation.
type OrderItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	Quantity   int
	UnitPrice  int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderCounterDTO is the day-keyed row backing sequential order numbers.
// One row per calendar day; the value is bumped atomically with an upsert,
// so numbers stay gap-free under concurrent creations and reset implicitly
// when the first order of a new day inserts a fresh row.
type OrderCounterDTO struct {
	Day   string `gorm:"primaryKey"`
	Value int
}

// TableName specifies the database table name for daily order counters.
func (OrderCounterDTO) TableName() string {
	return "order_counters"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		CustomerName: aggregate.CustomerName(),
		Status:       int(aggregate.Status()),
		Subtotal:     aggregate.Subtotal().Cents(),
		Tax:          aggregate.Tax().Cents(),
		Total:        aggregate.Total().Cents(),
		Paid:         aggregate.Paid(),
		Notes:        aggregate.Notes(),
		CreatedAt:    aggregate.CreatedAt(),
		ReadyAt:      aggregate.ReadyAt(),
		CompletedAt:  aggregate.CompletedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			menuItemID, itemDTO.Name, itemDTO.Quantity, kernel.NewMoneyFromCents(itemDTO.UnitPrice),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.CustomerName,
		dto.Notes,
		items,
		order.Status(dto.Status),
		kernel.NewMoneyFromCents(dto.Subtotal),
		kernel.NewMoneyFromCents(dto.Tax),
		kernel.NewMoneyFromCents(dto.Total),
		dto.Paid,
		dto.CreatedAt,
		dto.ReadyAt,
		dto.CompletedAt,
	)
}
