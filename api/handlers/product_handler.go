package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lumishop/storefront/internal/catalog/app"
)

type ProductHandler struct {
	catalog *app.Service
	log     zerolog.Logger
}

func NewProductHandler(catalog *app.Service, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

// GET /api/products?category=&sort=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	by := app.Sort(c.DefaultQuery("sort", string(app.SortDefault)))

	products, err := h.catalog.ListProducts(c.Request.Context(), category, by)
	if err != nil {
		h.log.Error().Err(err).Str("category", category).Msg("catalog list failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	switch {
	case errors.Is(err, app.ErrNotFound), errors.Is(err, app.ErrInvalidInput):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case err != nil:
		h.log.Error().Err(err).Int("product_id", id).Msg("catalog fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// GET /api/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories := append([]string{"all"}, app.Categories...)
	c.JSON(http.StatusOK, gin.H{"data": categories})
}
