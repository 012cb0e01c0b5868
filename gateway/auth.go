package gateway

import (
	"net/http"
	"strings"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// register creates an account. The duplicate-email check lives here: the
// container appends whatever it is given.
func (g *Gateway) register(c *gin.Context) {
	var req registerRequest
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
	for _, user := range state.Users {
		if strings.EqualFold(user.Email, req.Email) {
			c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
			return
		}
	}

	next, err := g.store.Dispatch(store.RegisterUser{User: models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": next.CurrentUser})
}

// login runs the mock credential check: a plaintext email+password compare
// against registered users, then feeds the result to the container.
func (g *Gateway) login(c *gin.Context) {
	var req loginRequest
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

	for _, user := range state.Users {
		if strings.EqualFold(user.Email, req.Email) && user.Password == req.Password {
			match := user
			if _, err := g.store.Dispatch(store.SetCurrentUser{User: &match}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"user": match})
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
}

func (g *Gateway) logout(c *gin.Context) {
	if _, err := g.store.Dispatch(store.Logout{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) currentUser(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !state.Authenticated || state.CurrentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": state.CurrentUser})
}

// myOrders is the logged-in user's order history, newest first.
func (g *Gateway) myOrders(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !state.Authenticated || state.CurrentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	orders := store.OrdersForUser(state, state.CurrentUser.ID)
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}
