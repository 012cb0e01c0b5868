package gateway

import (
	"net/http"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	TransactionID string `json:"transaction_id"`
}

func (g *Gateway) getCart(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartView(state))
}

// addCartItem adds one unit of a product. The product must exist and be live;
// repeated adds increment the existing line.
func (g *Gateway) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}
	if err := g.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product, ok := findProduct(state, req.ProductID)
	if !ok || !product.IsLive {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	next, err := g.store.Dispatch(store.AddToCart{Product: product})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartView(next))
}

// updateCartItem sets a line's quantity. Zero or negative quantities remove
// the line; that policy belongs to the container, not this handler.
func (g *Gateway) updateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	next, err := g.store.Dispatch(store.UpdateQuantity{
		ProductID: c.Param("productID"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartView(next))
}

func (g *Gateway) removeCartItem(c *gin.Context) {
	next, err := g.store.Dispatch(store.RemoveFromCart{ProductID: c.Param("productID")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartView(next))
}

func (g *Gateway) clearCart(c *gin.Context) {
	next, err := g.store.Dispatch(store.ClearCart{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartView(next))
}

// checkout turns the current cart into an order. Empty carts are rejected
// here; the container would happily record an empty order.
func (g *Gateway) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}
	if err := g.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if !models.ValidPaymentMethod(method) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
		return
	}
	if method != models.PaymentCOD && req.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id is required for online payments"})
		return
	}

	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(state.Cart) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}

	order := models.Order{
		ID: models.NewOrderID(),
		Customer: models.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		},
		Items:         state.Cart,
		Total:         store.CartSubtotal(state),
		PaymentMethod: method,
		Status:        models.StatusPending,
		Date:          time.Now(),
	}
	if method != models.PaymentCOD {
		order.TransactionID = req.TransactionID
	}
	if state.CurrentUser != nil {
		order.UserID = state.CurrentUser.ID
	}

	if _, err := g.store.Dispatch(store.AddOrder{Order: order}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := g.store.Dispatch(store.ClearCart{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func cartView(state models.State) gin.H {
	return gin.H{
		"items":    state.Cart,
		"count":    store.CartCount(state),
		"subtotal": store.CartSubtotal(state),
	}
}
