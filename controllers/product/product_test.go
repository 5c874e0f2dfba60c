package productcontroller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productcontroller "github.com/CesarAntIT/SmallDeliverySystem/controllers/product"
	"github.com/CesarAntIT/SmallDeliverySystem/logger"
	"github.com/CesarAntIT/SmallDeliverySystem/models"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
	"github.com/CesarAntIT/SmallDeliverySystem/testutil"
)

func newTestRouter(store *testutil.InMemoryProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewProductService(store, logger.NewNop())

	r := gin.New()
	r.GET("/products", productcontroller.GetProducts(svc))
	r.GET("/products/categories", productcontroller.GetCategories(svc))
	r.GET("/products/low-stock", productcontroller.GetLowStock(svc))
	r.GET("/products/:id", productcontroller.GetProductByID(svc))
	r.POST("/products", productcontroller.CreateProduct(svc))
	r.PUT("/products/:id", productcontroller.UpdateProduct(svc))
	r.PATCH("/products/:id/stock", productcontroller.UpdateStock(svc))
	r.DELETE("/products/:id", productcontroller.DeleteProduct(svc))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, store *testutil.InMemoryProductStore, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, store.Insert(context.Background(), &p))
	return p
}

func TestCreateProductReturns201WithLocation(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/products", `{"name":"Widget","price":9.99,"stock":10}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Widget", created.Name)
	assert.True(t, created.IsActive)
	assert.Equal(t, "/products/"+created.ID.String(), w.Header().Get("Location"))
}

func TestCreateProductValidationFailureListsFields(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/products", `{"name":"Widget","price":-1,"stock":-2}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "price")
	assert.Contains(t, resp.Fields, "stock")
}

func TestGetProductByIDNotFound(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/products/6f1f4fbe-3e9c-4a72-9528-2f0a3c7f8f11", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductByIDInvalidUUID(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/products/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)
	p := seedProduct(t, store, "Widget", 9.99, 10)

	w := doRequest(r, http.MethodPatch, "/products/"+p.ID.String()+"/stock", `-5`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := store.FindByID(context.Background(), p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Stock)
}

func TestUpdateStockAcceptsBareInteger(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)
	p := seedProduct(t, store, "Widget", 9.99, 10)

	w := doRequest(r, http.MethodPatch, "/products/"+p.ID.String()+"/stock", `0`)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := store.FindByID(context.Background(), p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)
	p := seedProduct(t, store, "Gadget", 4.50, 3)
	store.AddOrderItemReference(p.ID)

	w := doRequest(r, http.MethodDelete, "/products/"+p.ID.String(), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	// Second delete on the now-inactive product still succeeds.
	w = doRequest(r, http.MethodDelete, "/products/"+p.ID.String(), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Len(t, store.Audits(), 1)
}

func TestDeleteProductNeverExisted(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodDelete, "/products/6f1f4fbe-3e9c-4a72-9528-2f0a3c7f8f11", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductsPaged(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)
	seedProduct(t, store, "Alpha", 1.00, 1)
	seedProduct(t, store, "Bravo", 2.00, 2)
	seedProduct(t, store, "Charlie", 3.00, 3)

	w := doRequest(r, http.MethodGet, "/products?page=1&pageSize=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp services.PagedProducts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Alpha", resp.Items[0].Name)
}

func TestGetProductsInvalidPaging(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/products?page=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategories(t *testing.T) {
	store := testutil.NewInMemoryProductStore()
	r := newTestRouter(store)

	p := models.Product{Name: "A", Price: decimal.NewFromInt(1), Category: "tools", IsActive: true}
	require.NoError(t, store.Insert(context.Background(), &p))

	w := doRequest(r, http.MethodGet, "/products/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, []string{"tools"}, categories)
}
