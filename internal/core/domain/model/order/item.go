package order

import (
	"errors"
	"fmt"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line on an order. The menu item's name and unit price are
// snapshots captured at order time, so later catalog edits never retroactively
// alter historical orders.
type Item struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money

	isConstructed bool
}

// NewItem creates an order line with validation.
// Quantity must be at least 1 and the name snapshot must not be empty.
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("unit price")
	}

	return Item{
		menuItemID:    menuItemID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the catalog reference of the ordered item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name snapshot.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}
