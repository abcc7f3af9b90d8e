package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the storefront API. CORS is wide open: the API fronts a
// browser SPA served from a separate origin.
func NewRouter(products *ProductHandler, cart *CartHandler, contact *ContactHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := r.Group("/api")
	{
		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)
		api.GET("/categories", products.ListCategories)

		api.GET("/cart", cart.GetCart)
		api.POST("/cart/items", cart.AddToCart)
		api.PUT("/cart/items/:id", cart.UpdateQuantity)
		api.DELETE("/cart/items/:id", cart.RemoveFromCart)
		api.DELETE("/cart", cart.ClearCart)
		api.GET("/notifications", cart.ListNotifications)

		api.POST("/contact", contact.SubmitMessage)
	}

	return r
}
