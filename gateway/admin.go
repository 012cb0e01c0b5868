package gateway

import (
	"net/http"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
)

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type productRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"gte=0"`
	DiscountPrice   *float64 `json:"discount_price"`
	DiscountEndDate string   `json:"discount_end_date"`
	Images          []string `json:"images" validate:"required,min=1"`
	Category        string   `json:"category" validate:"required"`
	Tags            []string `json:"tags"`
	IsFeatured      bool     `json:"is_featured"`
	IsLive          bool     `json:"is_live"`
	Stock           int      `json:"stock" validate:"gte=0"`
	DigitalFile     string   `json:"digital_file"`
}

type slideRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Link     string `json:"link"`
}

// adminLogin checks the single shared back-office credential and sets the
// admin flag. Independent of customer auth.
func (g *Gateway) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}
	if err := g.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	if req.Email != g.config.Admin.Email || req.Password != g.config.Admin.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if _, err := g.store.Dispatch(store.SetAdminAuthenticated{Authenticated: true}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) adminLogout(c *gin.Context) {
	if _, err := g.store.Dispatch(store.SetAdminAuthenticated{Authenticated: false}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// adminDashboard mirrors the back-office header: live product and pending
// order counts.
func (g *Gateway) adminDashboard(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	liveProducts := len(store.LiveProducts(state))
	pendingOrders := 0
	for _, order := range state.Orders {
		if order.Status == models.StatusPending {
			pendingOrders++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"live_products":  liveProducts,
		"pending_orders": pendingOrders,
		"total_orders":   len(state.Orders),
		"total_users":    len(state.Users),
	})
}

func (g *Gateway) adminListOrders(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": state.Orders,
		"total":  len(state.Orders),
	})
}

// adminUpdateOrderStatus sets an order's status. Any known status may follow
// any other; only the id must exist, checked here because the container
// treats a miss as a silent no-op.
func (g *Gateway) adminUpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	status := models.OrderStatus(req.Status)
	if !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	orderID := c.Param("id")
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !orderExists(state, orderID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	if _, err := g.store.Dispatch(store.UpdateOrderStatus{OrderID: orderID, Status: status}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": orderID, "status": status})
}

// adminListProducts returns the full catalog, live or not.
func (g *Gateway) adminListProducts(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": state.Products,
		"total":    len(state.Products),
	})
}

func (g *Gateway) adminCreateProduct(c *gin.Context) {
	product, ok := g.bindProduct(c)
	if !ok {
		return
	}
	product.ID = models.NewProductID()

	if _, err := g.store.Dispatch(store.AddProduct{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (g *Gateway) adminUpdateProduct(c *gin.Context) {
	product, ok := g.bindProduct(c)
	if !ok {
		return
	}
	product.ID = c.Param("id")

	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, found := findProduct(state, product.ID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	if _, err := g.store.Dispatch(store.UpdateProduct{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (g *Gateway) adminToggleProduct(c *gin.Context) {
	id := c.Param("id")

	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, found := findProduct(state, id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	next, err := g.store.Dispatch(store.ToggleProductStatus{ProductID: id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	product, _ := findProduct(next, id)
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (g *Gateway) adminAddSlide(c *gin.Context) {
	var req slideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}
	if err := g.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	next, err := g.store.Dispatch(store.AddHeroSlide{Slide: models.HeroSlide{
		ImageURL: req.ImageURL,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Link:     req.Link,
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The container assigned the id; the new slide sits at the bottom of
	// the rotation.
	slide := next.HeroSlides[len(next.HeroSlides)-1]
	c.JSON(http.StatusCreated, gin.H{"slide": slide})
}

func (g *Gateway) adminDeleteSlide(c *gin.Context) {
	if _, err := g.store.Dispatch(store.DeleteHeroSlide{SlideID: c.Param("id")}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) adminListRequests(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests": state.Requests,
		"total":    len(state.Requests),
	})
}

func (g *Gateway) bindProduct(c *gin.Context) (models.Product, bool) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return models.Product{}, false
	}
	if err := g.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, validationError(err))
		return models.Product{}, false
	}
	if req.DiscountPrice != nil && *req.DiscountPrice >= req.Price {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discount_price must be less than price"})
		return models.Product{}, false
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
		IsLive:      req.IsLive,
		Stock:       req.Stock,
		DigitalFile: req.DigitalFile,
	}
	if req.DiscountPrice != nil {
		product.DiscountPrice = req.DiscountPrice
		if req.DiscountEndDate != "" {
			end, err := time.Parse(time.RFC3339, req.DiscountEndDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "discount_end_date must be RFC 3339"})
				return models.Product{}, false
			}
			product.DiscountEndDate = &end
		}
	}
	return product, true
}

func orderExists(state models.State, id string) bool {
	for _, order := range state.Orders {
		if order.ID == id {
			return true
		}
	}
	return false
}
