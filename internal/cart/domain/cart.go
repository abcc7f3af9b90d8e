package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/lumishop/storefront/internal/catalog/domain"
)

// LineItem is one product-quantity pairing inside the cart. The full product
// record is denormalized into the line so the cart renders and totals without
// touching the catalog. Quantity is >= 1 for any line present in the cart.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered sequence of line items, unique by product id. New items
// append; merges update in place, so insertion order survives any sequence of
// mutations.
type Cart struct {
	Items []LineItem `json:"items"`
}

func (c *Cart) indexOf(productID int) int {
	for i, it := range c.Items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

// Find returns the line item for the given product id, if present.
func (c *Cart) Find(productID int) (LineItem, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// Add merges quantity into an existing line for the product or appends a new
// line. It reports the resulting quantity and whether an existing line was
// merged into.
func (c *Cart) Add(p catalog.Product, quantity int) (int, bool) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		return c.Items[i].Quantity, true
	}
	c.Items = append(c.Items, LineItem{Product: p, Quantity: quantity})
	return quantity, false
}

// Remove deletes the line for the product id. It returns the removed line so
// callers can report on it, and false when no such line existed.
func (c *Cart) Remove(productID int) (LineItem, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return LineItem{}, false
	}
	removed := c.Items[i]
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return removed, true
}

// SetQuantity sets the line's quantity to exactly quantity. Callers must not
// pass quantity <= 0; that case is removal and belongs to Remove. It reports
// false when the product has no line in the cart.
func (c *Cart) SetQuantity(productID, quantity int) (LineItem, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return LineItem{}, false
	}
	c.Items[i].Quantity = quantity
	return c.Items[i], true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity over all lines, recomputed on every
// call.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
