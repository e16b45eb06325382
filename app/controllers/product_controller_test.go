package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/routes"
	"github.com/shashiranjanraj/kirana/pkg/auth"
	"github.com/shashiranjanraj/kirana/pkg/database"
	"github.com/shashiranjanraj/kirana/pkg/event"
	"github.com/shashiranjanraj/kirana/pkg/router"
)

// setupAPI boots a fresh in-memory database and a fully routed handler.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	database.DB = db
	event.Flush()

	r := router.New()
	routes.RegisterAPI(r)
	return r.Handler()
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "admin")
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, h http.Handler, method, path, body, authz string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const mouseJSON = `{"name":"Wireless Mouse","sku":"WM-100","price":"24.99","quantity":50,"type":"deliverable"}`

func TestAdminRoutesRequireAuth(t *testing.T) {
	h := setupAPI(t)

	rec := do(t, h, http.MethodGet, "/api/admin/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/admin/products", mouseJSON, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductCRUDOverHTTP(t *testing.T) {
	h := setupAPI(t)
	authz := bearer(t)

	// Create
	rec := do(t, h, http.MethodPost, "/api/admin/products", mouseJSON, authz)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "wireless-mouse", created.Data.Slug)

	// Duplicate → 422 naming the field
	rec = do(t, h, http.MethodPost, "/api/admin/products", mouseJSON, authz)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var failure struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Contains(t, failure.Errors, "name")

	// Show renders through the transformer: fixed price string plus the
	// computed storefront state.
	rec = do(t, h, http.MethodGet, "/api/admin/products/1", "", authz)
	require.Equal(t, http.StatusOK, rec.Code)
	var shown struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shown))
	assert.Equal(t, "24.99", shown.Data["price"])
	assert.Equal(t, true, shown.Data["live"])

	// Update keeps the slug
	update := `{"name":"Bluetooth Trackball","sku":"WM-100","price":"29.99","quantity":10,"type":"deliverable"}`
	rec = do(t, h, http.MethodPut, "/api/admin/products/1", update, authz)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "wireless-mouse", updated.Data.Slug)

	// Destroy, then 404
	rec = do(t, h, http.MethodDelete, "/api/admin/products/1", "", authz)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/admin/products/1", "", authz)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationFailureShape(t *testing.T) {
	h := setupAPI(t)
	authz := bearer(t)

	bad := `{"name":"","sku":"","price":"99.999","quantity":2001,"type":"streamable"}`
	rec := do(t, h, http.MethodPost, "/api/admin/products", bad, authz)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var failure struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	for _, field := range []string{"name", "sku", "price", "quantity", "type"} {
		assert.Contains(t, failure.Errors, field)
	}
}

func TestResourceSchemaEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec := do(t, h, http.MethodGet, "/api/admin/resources/products", "", bearer(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var schema struct {
		Data struct {
			Name    string                   `json:"name"`
			Fields  []map[string]interface{} `json:"fields"`
			Filters []map[string]interface{} `json:"filters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schema))
	assert.Equal(t, "product", schema.Data.Name)
	assert.NotEmpty(t, schema.Data.Fields)
	assert.NotEmpty(t, schema.Data.Filters)
}

func TestGraphQLProductsQuery(t *testing.T) {
	h := setupAPI(t)
	authz := bearer(t)

	rec := do(t, h, http.MethodPost, "/api/admin/products", mouseJSON, authz)
	require.Equal(t, http.StatusCreated, rec.Code)

	query := `{"query":"{ products { name slug price } }"}`
	rec = do(t, h, http.MethodPost, "/api/graphql", query, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data struct {
			Products []struct {
				Name  string `json:"name"`
				Slug  string `json:"slug"`
				Price string `json:"price"`
			} `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Products, 1)
	assert.Equal(t, "wireless-mouse", out.Data.Products[0].Slug)
	assert.Equal(t, "24.99", out.Data.Products[0].Price)
}

func TestGraphQLVisibleListing(t *testing.T) {
	h := setupAPI(t)
	authz := bearer(t)

	rec := do(t, h, http.MethodPost, "/api/admin/products", mouseJSON, authz)
	require.Equal(t, http.StatusCreated, rec.Code)

	hidden := `{"name":"Hidden Cable","sku":"HC-300","price":"5.00","quantity":5,"type":"deliverable","is_visible":false}`
	rec = do(t, h, http.MethodPost, "/api/admin/products", hidden, authz)
	require.Equal(t, http.StatusCreated, rec.Code)

	query := `{"query":"{ products(visible: true) { slug live } }"}`
	rec = do(t, h, http.MethodPost, "/api/graphql", query, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data struct {
			Products []struct {
				Slug string `json:"slug"`
				Live bool   `json:"live"`
			} `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Products, 1, "hidden products stay off the storefront listing")
	assert.Equal(t, "wireless-mouse", out.Data.Products[0].Slug)
	assert.True(t, out.Data.Products[0].Live)
}

func TestHealthEndpoint(t *testing.T) {
	h := setupAPI(t)
	rec := do(t, h, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
