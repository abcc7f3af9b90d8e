package app

import (
	"context"

	"github.com/lumishop/storefront/internal/catalog/domain"
)

// ProductSource is the read-only remote catalog. An empty category means the
// whole catalog.
type ProductSource interface {
	Product(ctx context.Context, id int) (domain.Product, error)
	Products(ctx context.Context, category string) ([]domain.Product, error)
}
