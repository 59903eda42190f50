// Package cart holds a shopper's pending lines. A Cart is a plain value owned
// by its caller; nothing here is shared or persisted.
package cart

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
)

var (
	// FlatShipping is charged once for any non-empty cart.
	FlatShipping = decimal.NewFromInt(50)
	TaxRate      = decimal.RequireFromString("0.10")
)

type Item struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	items []Item
}

func New(items ...Item) *Cart {
	c := &Cart{}
	for _, it := range items {
		c.AddItem(it)
	}
	return c
}

// Add puts quantity units of p in the cart, merging with an existing line.
func (c *Cart) Add(p product.Product, quantity int) {
	c.AddItem(Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image(),
		Quantity:  quantity,
	})
}

func (c *Cart) AddItem(it Item) {
	if it.Quantity <= 0 {
		return
	}
	if i := c.indexOf(it.ProductID); i >= 0 {
		c.items[i].Quantity += it.Quantity
		return
	}
	c.items = append(c.items, it)
}

// SetQuantity replaces the quantity of a line; zero or less removes it.
func (c *Cart) SetQuantity(productID string, quantity int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.items = slices.Delete(c.items, i, i+1)
		return
	}
	c.items[i].Quantity = quantity
}

func (c *Cart) Remove(productID string) {
	c.SetQuantity(productID, 0)
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []Item {
	return slices.Clone(c.items)
}

// Len counts units, not lines.
func (c *Cart) Len() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

func (c *Cart) Shipping() decimal.Decimal {
	if c.Empty() {
		return decimal.Zero
	}
	return FlatShipping
}

func (c *Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(TaxRate).Round(2)
}

func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Shipping()).Add(c.Tax())
}

// OrderItems copies the lines into the order snapshot shape.
func (c *Cart) OrderItems() []order.Item {
	out := make([]order.Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, order.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return out
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ProductID == productID })
}
