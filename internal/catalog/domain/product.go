package domain

import "github.com/shopspring/decimal"

// Rating is the aggregate customer rating the catalog reports for a product.
type Rating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}

// Product is an immutable catalog record. IDs are assigned by the catalog
// service and unique within it.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Rating      Rating          `json:"rating"`
}
