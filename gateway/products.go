package gateway

import (
	"net/http"
	"strconv"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
)

const relatedLimit = 4

// listProducts serves the shop page: live products filtered by free-text
// query, category and maximum price.
func (g *Gateway) listProducts(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	maxPrice := 0.0
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
	}

	products := store.FilterProducts(state, c.Query("q"), c.Query("category"), maxPrice)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

func (g *Gateway) featuredProducts(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	products := store.FeaturedLive(state)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

func (g *Gateway) getProduct(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product, ok := findProduct(state, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"related": store.RelatedProducts(state, product, relatedLimit),
	})
}

func (g *Gateway) listCategories(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": store.Categories(state)})
}

func (g *Gateway) listSlides(c *gin.Context) {
	state, err := g.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": state.HeroSlides})
}

func findProduct(state models.State, id string) (models.Product, bool) {
	for _, product := range state.Products {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}
