package handlers_test

import (
	"net/http"
	"testing"

	"tradeyard/internal/repos"
)

type productJSON struct {
	ID       string  `json:"id"`
	SellerID string  `json:"sellerId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Active   bool    `json:"active"`
}

type listData struct {
	Items      []productJSON `json:"items"`
	Pagination struct {
		Page            int  `json:"page"`
		PageSize        int  `json:"pageSize"`
		TotalItems      int  `json:"totalItems"`
		TotalPages      int  `json:"totalPages"`
		HasPreviousPage bool `json:"hasPreviousPage"`
		HasNextPage     bool `json:"hasNextPage"`
	} `json:"pagination"`
}

func TestProductListAndGet(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "GET", "/api/products", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	var data listData
	decodeData(t, env, &data)
	if len(data.Items) < 2 {
		t.Fatalf("expected seeded products, got %d", len(data.Items))
	}

	resp, env = doJSON(t, app, "GET", "/api/products/"+repos.SeedProductVise, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}
	var p productJSON
	decodeData(t, env, &p)
	if p.Name == "" || p.ID != repos.SeedProductVise {
		t.Fatalf("get = %+v", p)
	}
}

// Product lookups keep the legacy not-found body, including for ids that are
// not UUIDs at all.
func TestProductNotFoundLegacyShape(t *testing.T) {
	app := newTestApp(t)
	for _, id := range []string{"not-a-guid", "8d2b0c19-de0f-4a6b-8c98-7fcebd0c9b87"} {
		resp, env := doJSON(t, app, "GET", "/api/products/"+id, "", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: status %d, want 404", id, resp.StatusCode)
		}
		if env.Success {
			t.Fatalf("%s: success should be false", id)
		}
		if env.Message != "Product not found" {
			t.Fatalf("%s: message = %q", id, env.Message)
		}
		if env.Timestamp == "" {
			t.Fatalf("%s: missing timestamp", id)
		}
	}
}

func TestProductFiltersAndSearch(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "GET", "/api/products?q=vise", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("filter: status %d", resp.StatusCode)
	}
	var data listData
	decodeData(t, env, &data)
	if len(data.Items) != 1 || data.Items[0].ID != repos.SeedProductVise {
		t.Fatalf("q=vise items = %+v", data.Items)
	}

	// /api/search delegates to the same catalog search
	resp, env = doJSON(t, app, "GET", "/api/search?q=vise&type=products", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: status %d", resp.StatusCode)
	}
	decodeData(t, env, &data)
	if len(data.Items) != 1 {
		t.Fatalf("search items = %+v", data.Items)
	}

	resp, _ = doJSON(t, app, "GET", "/api/search?q=x&type=bogus", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad type: status %d, want 400", resp.StatusCode)
	}
}

func TestSellerProductLifecycle(t *testing.T) {
	app := newTestApp(t)
	seller := loginSeller(t, app)

	resp, env := doJSON(t, app, "POST", "/api/products", seller, map[string]any{
		"categoryId": "industrial-equipment", "name": "Hydraulic Press 20t",
		"description": "Bench hydraulic press.", "price": 1250.0, "stock": 3,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d (%s)", resp.StatusCode, env.Error)
	}
	var p productJSON
	decodeData(t, env, &p)
	if p.ID == "" {
		t.Fatal("create: missing product id")
	}

	resp, env = doJSON(t, app, "PUT", "/api/products/"+p.ID, seller, map[string]any{
		"categoryId": "industrial-equipment", "name": "Hydraulic Press 20t",
		"description": "Bench hydraulic press.", "price": 1190.0, "stock": 3,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d (%s)", resp.StatusCode, env.Error)
	}
	decodeData(t, env, &p)
	if p.Price != 1190.0 {
		t.Fatalf("update price = %v", p.Price)
	}

	// another seller cannot touch it
	other := registerSeller(t, app, "other-seller@example.com")
	resp, _ = doJSON(t, app, "PUT", "/api/products/"+p.ID, other, map[string]any{
		"categoryId": "industrial-equipment", "name": "Hijack", "price": 1.0,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign update: status %d, want 403", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/products/"+p.ID, seller, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	// soft delete: gone from the public catalog
	resp, _ = doJSON(t, app, "GET", "/api/products/"+p.ID, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted product still visible: status %d", resp.StatusCode)
	}
}

func TestAvailabilityBuckets(t *testing.T) {
	app := newTestApp(t)
	resp, env := doJSON(t, app, "GET", "/api/products/"+repos.SeedProductVise+"/availability", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("availability: status %d", resp.StatusCode)
	}
	var av struct {
		Status string `json:"status"`
	}
	decodeData(t, env, &av)
	if av.Status != "IN_STOCK" {
		t.Fatalf("status = %q, want IN_STOCK", av.Status)
	}
}
