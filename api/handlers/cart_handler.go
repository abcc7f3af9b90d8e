package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	cartapp "github.com/lumishop/storefront/internal/cart/app"
	"github.com/lumishop/storefront/internal/cart/domain"
	catalogapp "github.com/lumishop/storefront/internal/catalog/app"
	"github.com/lumishop/storefront/internal/notify"
)

type CartHandler struct {
	cart    *cartapp.Manager
	catalog *catalogapp.Service
	events  *notify.Ring
	log     zerolog.Logger
}

func NewCartHandler(cart *cartapp.Manager, catalog *catalogapp.Service, events *notify.Ring, log zerolog.Logger) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, events: events, log: log}
}

type addToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"omitempty,gte=1"`
}

type updateQuantityRequest struct {
	// Pointer so an explicit zero survives binding; zero and below mean
	// removal.
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartPayload())
}

// POST /api/cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID)
	switch {
	case errors.Is(err, catalogapp.ErrNotFound), errors.Is(err, catalogapp.ErrInvalidInput):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case err != nil:
		h.log.Error().Err(err).Int("product_id", req.ProductID).Msg("catalog fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load product"})
		return
	}

	h.cart.AddToCart(c.Request.Context(), product, req.Quantity)
	c.JSON(http.StatusOK, h.cartPayload())
}

// PUT /api/cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cart.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
	c.JSON(http.StatusOK, h.cartPayload())
}

// DELETE /api/cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	h.cart.RemoveFromCart(c.Request.Context(), id)
	c.JSON(http.StatusOK, h.cartPayload())
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, h.cartPayload())
}

// GET /api/notifications
func (h *CartHandler) ListNotifications(c *gin.Context) {
	events := h.events.Recent()
	if events == nil {
		events = []notify.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func (h *CartHandler) cartPayload() gin.H {
	items := h.cart.Items()
	if items == nil {
		items = []domain.LineItem{}
	}
	return gin.H{
		"items":       items,
		"total_items": h.cart.TotalItems(),
		"total_price": h.cart.TotalPrice(),
	}
}
