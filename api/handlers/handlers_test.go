package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	cartapp "github.com/lumishop/storefront/internal/cart/app"
	"github.com/lumishop/storefront/internal/cart/infra/store"
	catalogapp "github.com/lumishop/storefront/internal/catalog/app"
	"github.com/lumishop/storefront/internal/catalog/domain"
	"github.com/lumishop/storefront/internal/contact"
	"github.com/lumishop/storefront/internal/notify"
)

type fakeSource struct {
	products []domain.Product
}

func (f *fakeSource) Product(ctx context.Context, id int) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, catalogapp.ErrNotFound
}

func (f *fakeSource) Products(ctx context.Context, category string) ([]domain.Product, error) {
	return f.products, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	src := &fakeSource{products: []domain.Product{
		{ID: 1, Title: "Backpack", Price: decimal.RequireFromString("9.99"), Category: "men's clothing"},
		{ID: 2, Title: "T-Shirt", Price: decimal.RequireFromString("15.50"), Category: "men's clothing"},
	}}
	catalogSvc := catalogapp.NewService(src)

	events := notify.NewRing(10)
	manager := cartapp.NewManager(context.Background(), store.NewMemory(), "cart", events, log)

	return NewRouter(
		NewProductHandler(catalogSvc, log),
		NewCartHandler(manager, catalogSvc, events, log),
		NewContactHandler(contact.NewService(log)),
	)
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Items []struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	TotalItems int    `json:"total_items"`
	TotalPrice string `json:"total_price"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart response: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestCartEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("empty cart", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/cart", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		resp := decodeCart(t, w)
		if len(resp.Items) != 0 || resp.TotalItems != 0 {
			t.Fatalf("expected empty cart, got %+v", resp)
		}
	})

	t.Run("add, merge, update, remove", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 1, "quantity": 1})
		if w.Code != http.StatusOK {
			t.Fatalf("add status %d: %s", w.Code, w.Body.String())
		}

		w = perform(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 1, "quantity": 2})
		resp := decodeCart(t, w)
		if len(resp.Items) != 1 || resp.TotalItems != 3 || resp.TotalPrice != "29.97" {
			t.Fatalf("after merge: %+v", resp)
		}

		w = perform(r, http.MethodPut, "/api/cart/items/1", gin.H{"quantity": 1})
		resp = decodeCart(t, w)
		if resp.TotalItems != 1 || resp.TotalPrice != "9.99" {
			t.Fatalf("after update: %+v", resp)
		}

		w = perform(r, http.MethodDelete, "/api/cart/items/1", nil)
		resp = decodeCart(t, w)
		if len(resp.Items) != 0 {
			t.Fatalf("after remove: %+v", resp)
		}
	})

	t.Run("quantity zero removes", func(t *testing.T) {
		perform(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 2})
		w := perform(r, http.MethodPut, "/api/cart/items/2", gin.H{"quantity": 0})
		resp := decodeCart(t, w)
		for _, it := range resp.Items {
			if it.ID == 2 {
				t.Fatalf("item survived quantity 0: %+v", resp)
			}
		}
	})

	t.Run("unknown product -> 404", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 99})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		perform(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 1})
		w := perform(r, http.MethodDelete, "/api/cart", nil)
		resp := decodeCart(t, w)
		if len(resp.Items) != 0 || resp.TotalItems != 0 {
			t.Fatalf("after clear: %+v", resp)
		}
	})

	t.Run("notifications recorded", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/notifications", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var resp struct {
			Data []notify.Event `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.Data) == 0 {
			t.Fatal("no notifications recorded")
		}
	})
}

func TestProductEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("list", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/products?sort=price-high-low", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var resp struct {
			Data []domain.Product `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.Data) != 2 || resp.Data[0].ID != 2 {
			t.Fatalf("unexpected listing: %+v", resp.Data)
		}
	})

	t.Run("get known", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/products/1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
	})

	t.Run("get unknown -> 404", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/products/99", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status %d", w.Code)
		}
	})

	t.Run("categories", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/categories", nil)
		var resp struct {
			Data []string `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.Data) == 0 || resp.Data[0] != "all" {
			t.Fatalf("unexpected categories: %v", resp.Data)
		}
	})
}

func TestContactEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("valid message", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/contact", gin.H{
			"name":    "Ada Lovelace",
			"email":   "ada@example.com",
			"subject": "Order question",
			"message": "Where is my backpack order?",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
	})

	invalid := []struct {
		name string
		body gin.H
	}{
		{"short name", gin.H{"name": "A", "email": "a@example.com", "subject": "Subject!", "message": "Long enough message"}},
		{"bad email", gin.H{"name": "Ada", "email": "not-an-email", "subject": "Subject!", "message": "Long enough message"}},
		{"short subject", gin.H{"name": "Ada", "email": "a@example.com", "subject": "Hey", "message": "Long enough message"}},
		{"short message", gin.H{"name": "Ada", "email": "a@example.com", "subject": "Subject!", "message": "short"}},
	}
	for _, tc := range invalid {
		t.Run(tc.name+" -> 400", func(t *testing.T) {
			w := perform(r, http.MethodPost, "/api/contact", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d", w.Code)
			}
		})
	}
}
