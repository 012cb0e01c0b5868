// Package gateway is the HTTP presentation layer. It is a caller of the
// state container: handlers validate input, run the mock credential and
// uniqueness checks, and only then dispatch actions. The container itself is
// never asked to reject anything.
package gateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/seed"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Gateway struct {
	config   *config.Config
	store    *store.Store
	logger   *zap.Logger
	router   *gin.Engine
	validate *validator.Validate
	server   *http.Server
}

func NewGateway(cfg *config.Config, logger *zap.Logger, st *store.Store) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Gateway{
		config:   cfg,
		store:    st,
		logger:   logger,
		router:   router,
		validate: validator.New(),
	}
}

func (g *Gateway) SetupRoutes() {
	// Health check
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := g.router.Group("/api/v1")
	{
		// Storefront routes
		products := v1.Group("/products")
		{
			products.GET("", g.listProducts)
			products.GET("/featured", g.featuredProducts)
			products.GET("/:id", g.getProduct)
		}
		v1.GET("/categories", g.listCategories)
		v1.GET("/slides", g.listSlides)
		v1.GET("/pages/:slug", g.getPage)

		cart := v1.Group("/cart")
		{
			cart.GET("", g.getCart)
			cart.POST("/items", g.addCartItem)
			cart.PUT("/items/:productID", g.updateCartItem)
			cart.DELETE("/items/:productID", g.removeCartItem)
			cart.DELETE("", g.clearCart)
		}
		v1.POST("/checkout", g.checkout)
		v1.POST("/requests", g.createProductRequest)

		// Account routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", g.register)
			auth.POST("/login", g.login)
			auth.POST("/logout", g.logout)
			auth.GET("/me", g.currentUser)
			auth.GET("/orders", g.myOrders)
		}

		// Admin back office
		admin := v1.Group("/admin")
		{
			admin.POST("/login", g.adminLogin)
			admin.POST("/logout", g.adminLogout)

			protected := admin.Group("")
			protected.Use(g.requireAdmin())
			{
				protected.GET("/dashboard", g.adminDashboard)
				protected.GET("/orders", g.adminListOrders)
				protected.PUT("/orders/:id/status", g.adminUpdateOrderStatus)
				protected.GET("/products", g.adminListProducts)
				protected.POST("/products", g.adminCreateProduct)
				protected.PUT("/products/:id", g.adminUpdateProduct)
				protected.POST("/products/:id/toggle", g.adminToggleProduct)
				protected.POST("/slides", g.adminAddSlide)
				protected.DELETE("/slides/:id", g.adminDeleteSlide)
				protected.GET("/requests", g.adminListRequests)
			}
		}
	}
}

func (g *Gateway) Start() error {
	addr := g.config.Server.Addr()
	g.logger.Info("Gateway starting", zap.String("address", addr))
	g.server = &http.Server{
		Addr:              addr,
		Handler:           g.router,
		ReadHeaderTimeout: 30 * time.Second,
	}
	return g.server.ListenAndServe()
}

// Router exposes the underlying engine for tests.
func (g *Gateway) Router() http.Handler {
	return g.router
}

// requireAdmin gates back-office routes on the admin flag in state. The flag
// is a trust domain separate from customer auth: customer logout never
// touches it.
func (g *Gateway) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := g.store.Snapshot()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !state.AdminAuthenticated {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin authentication required"})
			return
		}
		c.Next()
	}
}

func (g *Gateway) getPage(c *gin.Context) {
	page, ok := seed.StaticPages[c.Param("slug")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func validationError(err error) gin.H {
	return gin.H{"error": fmt.Sprintf("invalid request: %v", err)}
}
