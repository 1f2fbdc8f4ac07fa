package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// The cases here stop at request validation, before any database access.

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/api/v1/admin")
	products := admin.Group("/products")
	{
		products.POST("", CreateProduct)
		products.PATCH("/:id", UpdateProduct)
		products.DELETE("/:id", DeleteProduct)
	}
	return router
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestCreateProductRejectsMalformedPayload(t *testing.T) {
	router := adminRouter()

	cases := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing required fields", `{"nameEn": "Charizard"}`},
		{"unknown game type", `{
			"sku": "poke-001", "nameEn": "Charizard",
			"categoryId": "018d1234-5678-7abc-def0-123456789abc",
			"gameType": "CHESS", "condition": "MINT"
		}`},
		{"negative price", `{
			"sku": "poke-001", "nameEn": "Charizard",
			"categoryId": "018d1234-5678-7abc-def0-123456789abc",
			"gameType": "POKEMON", "condition": "MINT", "priceUsd": -5
		}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			body := decodeEnvelope(t, w)
			if body["error"] != true {
				t.Errorf("envelope error flag = %v, want true", body["error"])
			}
		})
	}
}

func TestCreateProductRejectsMalformedCategoryID(t *testing.T) {
	router := adminRouter()

	payload := `{
		"sku": "poke-001", "nameEn": "Charizard",
		"categoryId": "not-a-uuid",
		"gameType": "POKEMON", "condition": "MINT"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeEnvelope(t, w); body["message"] != "Invalid category ID" {
		t.Errorf("message = %q, want %q", body["message"], "Invalid category ID")
	}
}

func TestUpdateAndDeleteRejectMalformedProductID(t *testing.T) {
	router := adminRouter()

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPatch, "/api/v1/admin/products/abc", `{"featured": true}`},
		{http.MethodDelete, "/api/v1/admin/products/12345", ""},
	}

	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if body := decodeEnvelope(t, w); body["message"] != "Invalid product ID" {
				t.Errorf("message = %q, want %q", body["message"], "Invalid product ID")
			}
		})
	}
}
