package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/seed"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load("")
	require.NoError(t, err)

	st := store.New(seed.Initial(), zap.NewNop())
	t.Cleanup(st.Close)

	gw := NewGateway(cfg, zap.NewNop(), st)
	gw.SetupRoutes()
	return gw
}

func doJSON(t *testing.T, gw *Gateway, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	gw.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func adminLogin(t *testing.T, gw *Gateway) {
	t.Helper()
	w := doJSON(t, gw, http.MethodPost, "/api/v1/admin/login", gin.H{
		"email":    gw.config.Admin.Email,
		"password": gw.config.Admin.Password,
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	gw := newTestGateway(t)
	w := doJSON(t, gw, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListProductsLiveOnly(t *testing.T) {
	gw := newTestGateway(t)
	adminLogin(t, gw)

	// Unlist one product, the public list shrinks by one.
	w := doJSON(t, gw, http.MethodPost, "/api/v1/admin/products/PRD-1/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(5), decode(t, w)["total"])
}

func TestListProductsFilters(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/products?category=Software", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["total"])

	w = doJSON(t, gw, http.MethodGet, "/api/v1/products?q=gift", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = doJSON(t, gw, http.MethodGet, "/api/v1/products?max_price=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductWithRelated(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/products/PRD-3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.NotNil(t, body["product"])
	// PRD-6 shares the Software category.
	related := body["related"].([]interface{})
	require.Len(t, related, 1)

	w = doJSON(t, gw, http.MethodGet, "/api/v1/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddMergesLines(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "PRD-4"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "PRD-4"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["items"].([]interface{}), 1)
	assert.Equal(t, 100.0, body["subtotal"])
}

func TestCartAddUnknownProduct(t *testing.T) {
	gw := newTestGateway(t)
	w := doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartQuantityZeroRemovesLine(t *testing.T) {
	gw := newTestGateway(t)

	doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "PRD-4"})
	doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "PRD-2"})

	w := doJSON(t, gw, http.MethodPut, "/api/v1/cart/items/PRD-4", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(1), body["count"])
}

func TestCheckoutFlow(t *testing.T) {
	gw := newTestGateway(t)

	doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "PRD-4"})

	w := doJSON(t, gw, http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Rohan Ahmed",
		"email":          "rohan@example.com",
		"phone":          "01712345678",
		"address":        "Dhaka, Bangladesh",
		"payment_method": "bKash",
		"transaction_id": "BK999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	order := decode(t, w)["order"].(map[string]interface{})
	assert.Equal(t, 50.0, order["total"])
	assert.Equal(t, "Pending", order["status"])
	assert.NotEmpty(t, order["id"])

	// The cart is emptied by checkout.
	w = doJSON(t, gw, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Rohan Ahmed",
		"email":          "rohan@example.com",
		"phone":          "01712345678",
		"address":        "Dhaka, Bangladesh",
		"payment_method": "COD",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCheckoutRequiresTransactionIDForOnlinePayments(t *testing.T) {
	gw := newTestGateway(t)
	doJSON(t, gw, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "PRD-4"})

	w := doJSON(t, gw, http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Rohan Ahmed",
		"email":          "rohan@example.com",
		"phone":          "01712345678",
		"address":        "Dhaka, Bangladesh",
		"payment_method": "Nagad",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Tanvir Hasan",
		"email":    "tanvir@example.net",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The duplicate check is this layer's job; the container itself would
	// append a second copy.
	w = doJSON(t, gw, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Tanvir Again",
		"email":    "TANVIR@example.net",
		"password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginLogout(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "rohan@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, gw, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "rohan@example.com",
		"password": "rohan123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodGet, "/api/v1/auth/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = doJSON(t, gw, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/admin/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, gw, http.MethodPost, "/api/v1/admin/login", gin.H{
		"email":    gw.config.Admin.Email,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	adminLogin(t, gw)
	w = doJSON(t, gw, http.MethodGet, "/api/v1/admin/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminFlagSurvivesCustomerLogout(t *testing.T) {
	gw := newTestGateway(t)
	adminLogin(t, gw)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Customer logout and admin auth are separate trust domains.
	w = doJSON(t, gw, http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	gw := newTestGateway(t)
	adminLogin(t, gw)

	w := doJSON(t, gw, http.MethodPut, "/api/v1/admin/orders/ORD-12346/status", gin.H{"status": "Delivered"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodPut, "/api/v1/admin/orders/ORD-12346/status", gin.H{"status": "Shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, gw, http.MethodPut, "/api/v1/admin/orders/missing/status", gin.H{"status": "Delivered"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminProductLifecycle(t *testing.T) {
	gw := newTestGateway(t)
	adminLogin(t, gw)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/admin/products", gin.H{
		"name":     "New Bundle",
		"price":    10.0,
		"images":   []string{"https://example.com/x.jpg"},
		"category": "Software",
		"is_live":  true,
		"stock":    5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["product"].(map[string]interface{})
	id := created["id"].(string)
	require.NotEmpty(t, id)

	// New products are prepended to the catalog.
	w = doJSON(t, gw, http.MethodGet, "/api/v1/admin/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decode(t, w)["products"].([]interface{})
	assert.Equal(t, id, products[0].(map[string]interface{})["id"])

	w = doJSON(t, gw, http.MethodPut, "/api/v1/admin/products/"+id, gin.H{
		"name":     "Renamed Bundle",
		"price":    12.0,
		"images":   []string{"https://example.com/x.jpg"},
		"category": "Software",
		"is_live":  true,
		"stock":    5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodPost, "/api/v1/admin/products/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	toggled := decode(t, w)["product"].(map[string]interface{})
	assert.Equal(t, false, toggled["is_live"])
}

func TestAdminRejectsBadDiscount(t *testing.T) {
	gw := newTestGateway(t)
	adminLogin(t, gw)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/admin/products", gin.H{
		"name":           "Bad Discount",
		"price":          10.0,
		"discount_price": 15.0,
		"images":         []string{"https://example.com/x.jpg"},
		"category":       "Software",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminSlideLifecycle(t *testing.T) {
	gw := newTestGateway(t)
	adminLogin(t, gw)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/slides", nil)
	require.Equal(t, http.StatusOK, w.Code)
	before := len(decode(t, w)["slides"].([]interface{}))

	w = doJSON(t, gw, http.MethodPost, "/api/v1/admin/slides", gin.H{
		"image_url": "https://example.com/banner.jpg",
		"title":     "Mega Sale",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	slide := decode(t, w)["slide"].(map[string]interface{})
	id := slide["id"].(string)
	require.NotEmpty(t, id)

	w = doJSON(t, gw, http.MethodDelete, "/api/v1/admin/slides/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, gw, http.MethodGet, "/api/v1/slides", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["slides"].([]interface{}), before)
}

func TestProductRequestFlow(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodPost, "/api/v1/requests", gin.H{
		"name":    "Farah Islam",
		"email":   "farah@example.com",
		"message": "Please stock 3D asset packs",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	request := decode(t, w)["request"].(map[string]interface{})
	assert.NotEmpty(t, request["id"])

	adminLogin(t, gw)
	w = doJSON(t, gw, http.MethodGet, "/api/v1/admin/requests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["total"])
	// Newest request sits at the head of the audit trail.
	first := body["requests"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Please stock 3D asset packs", first["message"])
}

func TestStaticPages(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/pages/about", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["title"])

	w = doJSON(t, gw, http.MethodGet, "/api/v1/pages/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode(t, w)["categories"].([]interface{})
	assert.Equal(t, "Graphics Resources", categories[0])
}

func TestFeaturedEndpoint(t *testing.T) {
	gw := newTestGateway(t)

	w := doJSON(t, gw, http.MethodGet, "/api/v1/products/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)
	// Four of the six seed products are featured and live.
	assert.Equal(t, float64(4), decode(t, w)["total"])
}
