package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumishop/storefront/internal/contact"
)

type ContactHandler struct {
	contact *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{contact: svc}
}

// POST /api/contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.contact.Submit(msg)
	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for contacting us. We'll get back to you soon.",
	})
}
