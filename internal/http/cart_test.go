package handlers_test

import (
	"net/http"
	"testing"

	"tradeyard/internal/repos"
)

type cartJSON struct {
	Items []struct {
		ProductID string  `json:"productId"`
		Quantity  int     `json:"quantity"`
		Subtotal  float64 `json:"subtotal"`
	} `json:"items"`
	Total float64 `json:"total"`
}

func TestCartAddMergeAndClear(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)

	addToCart(t, app, buyer, repos.SeedProductVise, 2)
	addToCart(t, app, buyer, repos.SeedProductVise, 3)

	_, env := doJSON(t, app, "GET", "/api/cart", buyer, nil)
	var cart cartJSON
	decodeData(t, env, &cart)
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want merged single line", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", cart.Items[0].Quantity)
	}
	if cart.Total != 5*219.00 {
		t.Fatalf("total = %v", cart.Total)
	}

	// set an explicit quantity
	resp, _ := doJSON(t, app, "PUT", "/api/cart/items/"+repos.SeedProductVise, buyer, map[string]int{
		"quantity": 1,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set qty: status %d", resp.StatusCode)
	}
	_, env = doJSON(t, app, "GET", "/api/cart", buyer, nil)
	decodeData(t, env, &cart)
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("quantity after set = %d", cart.Items[0].Quantity)
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/cart", buyer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear: status %d", resp.StatusCode)
	}
	_, env = doJSON(t, app, "GET", "/api/cart", buyer, nil)
	decodeData(t, env, &cart)
	if len(cart.Items) != 0 {
		t.Fatalf("cart not cleared: %+v", cart.Items)
	}
}

func TestCartEnforcesMinOrderQty(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)

	// the aluminium sheet ships in lots of 10
	resp, env := doJSON(t, app, "POST", "/api/cart/items", buyer, map[string]any{
		"productId": repos.SeedProductAlu, "quantity": 3,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("below MOQ: status %d (%s)", resp.StatusCode, env.Error)
	}
}

func TestCartRejectsUnknownAndInactiveProducts(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)
	seller := loginSeller(t, app)

	resp, _ := doJSON(t, app, "POST", "/api/cart/items", buyer, map[string]any{
		"productId": "11e6f8a0-0000-4000-8000-000000000000", "quantity": 1,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown product: status %d, want 404", resp.StatusCode)
	}

	// retire a product, then try to add it
	_, env := doJSON(t, app, "POST", "/api/products", seller, map[string]any{
		"categoryId": "raw-materials", "name": "Discontinued Widget", "price": 5.0, "stock": 10,
	})
	var p struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &p)
	if resp, _ := doJSON(t, app, "DELETE", "/api/products/"+p.ID, seller, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("retire: status %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/api/cart/items", buyer, map[string]any{
		"productId": p.ID, "quantity": 1,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("inactive product: status %d, want 409", resp.StatusCode)
	}
}
