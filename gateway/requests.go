package gateway

import (
	"net/http"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
)

type createRequestBody struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// createProductRequest records a "request a product" form submission. The
// container assigns the id and timestamp.
func (g *Gateway) createProductRequest(c *gin.Context) {
	var req createRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}
	if err := g.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	next, err := g.store.Dispatch(store.AddProductRequest{Request: models.ProductRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Requests are prepended, so the new one is at the head.
	c.JSON(http.StatusCreated, gin.H{"request": next.Requests[0]})
}
