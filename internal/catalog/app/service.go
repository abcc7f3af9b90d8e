package app

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/lumishop/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Sort is a client-side ordering applied after the fetch; the remote catalog
// itself returns its own default order.
type Sort string

const (
	SortDefault      Sort = "default"
	SortPriceLowHigh Sort = "price-low-high"
	SortPriceHighLow Sort = "price-high-low"
	SortRating       Sort = "rating"
)

// Categories the storefront offers as filters, in display order. "all" is a
// pseudo-category meaning no filter.
var Categories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

type Service struct {
	source ProductSource
}

func NewService(source ProductSource) *Service {
	return &Service{source: source}
}

func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.source.Product(ctx, id)
}

// ListProducts fetches the catalog, optionally restricted to one category,
// and applies the requested ordering. An unknown sort value behaves like
// SortDefault. The result is independent of cart contents; the two
// collections are never reconciled against each other.
func (s *Service) ListProducts(ctx context.Context, category string, by Sort) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "all" {
		category = ""
	}

	products, err := s.source.Products(ctx, category)
	if err != nil {
		return nil, err
	}

	switch by {
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Rating.Rate.LessThan(products[i].Rating.Rate)
		})
	}

	return products, nil
}
