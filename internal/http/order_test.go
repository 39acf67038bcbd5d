package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tradeyard/internal/repos"
)

type orderJSON struct {
	ID       string  `json:"id"`
	GroupID  string  `json:"groupId"`
	SellerID string  `json:"sellerId"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

func addToCart(t *testing.T, app *fiber.App, token, productID string, qty int) {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/cart/items", token, map[string]any{
		"productId": productID, "quantity": qty,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add to cart: status %d (%s)", resp.StatusCode, env.Error)
	}
}

func TestCheckoutSplitsCartBySeller(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)

	// a second seller with one listing
	sellerB := registerSeller(t, app, "split-seller@example.com")
	_, env := doJSON(t, app, "POST", "/api/products", sellerB, map[string]any{
		"categoryId": "raw-materials", "name": "Copper Rod 10mm",
		"price": 14.5, "stock": 100,
	})
	var rod struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &rod)

	addToCart(t, app, buyer, repos.SeedProductVise, 2)
	addToCart(t, app, buyer, rod.ID, 10)

	resp, env := doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "1 Dock Road, Hamburg",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("checkout: status %d (%s)", resp.StatusCode, env.Error)
	}
	var data struct {
		GroupID string      `json:"groupId"`
		Orders  []orderJSON `json:"orders"`
	}
	decodeData(t, env, &data)
	if len(data.Orders) != 2 {
		t.Fatalf("orders = %d, want 2 (one per seller)", len(data.Orders))
	}
	for _, o := range data.Orders {
		if o.GroupID != data.GroupID {
			t.Fatalf("order %s group %s != %s", o.ID, o.GroupID, data.GroupID)
		}
		if o.Status != "PENDING" {
			t.Fatalf("order status = %q", o.Status)
		}
	}
	if data.Orders[0].SellerID == data.Orders[1].SellerID {
		t.Fatal("both orders landed on the same seller")
	}

	// stock was decremented
	_, env = doJSON(t, app, "GET", "/api/products/"+repos.SeedProductVise, "", nil)
	var p struct {
		Stock int `json:"stock"`
	}
	decodeData(t, env, &p)
	if p.Stock != 38 {
		t.Fatalf("vise stock = %d, want 38", p.Stock)
	}

	// cart is now empty, so a second checkout fails
	resp, _ = doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "1 Dock Road, Hamburg",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("checkout empty cart: status %d, want 400", resp.StatusCode)
	}
}

func TestCheckoutInsufficientStock(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)

	addToCart(t, app, buyer, repos.SeedProductVise, 41) // seeded stock is 40
	resp, _ := doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "somewhere",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestOrderStatusLifecycle(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)
	seller := loginSeller(t, app)

	addToCart(t, app, buyer, repos.SeedProductVise, 1)
	_, env := doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "Unit 4, Leeds",
	})
	var data struct {
		Orders []orderJSON `json:"orders"`
	}
	decodeData(t, env, &data)
	orderID := data.Orders[0].ID

	// another seller cannot move it
	other := registerSeller(t, app, "intruder@example.com")
	resp, _ := doJSON(t, app, "PUT", "/api/orders/"+orderID+"/status", other, map[string]string{
		"status": "CONFIRMED",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign seller: status %d, want 403", resp.StatusCode)
	}

	// skipping straight to SHIPPED is refused
	resp, _ = doJSON(t, app, "PUT", "/api/orders/"+orderID+"/status", seller, map[string]string{
		"status": "SHIPPED", "trackingNumber": "TRK1",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("skip transition: status %d, want 409", resp.StatusCode)
	}

	resp, env = doJSON(t, app, "PUT", "/api/orders/"+orderID+"/status", seller, map[string]string{
		"status": "CONFIRMED",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm: status %d (%s)", resp.StatusCode, env.Error)
	}

	// shipping needs a tracking number
	resp, _ = doJSON(t, app, "PUT", "/api/orders/"+orderID+"/status", seller, map[string]string{
		"status": "SHIPPED",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("ship without tracking: status %d, want 400", resp.StatusCode)
	}
	resp, env = doJSON(t, app, "PUT", "/api/orders/"+orderID+"/status", seller, map[string]string{
		"status": "SHIPPED", "trackingNumber": "DHL-778123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ship: status %d (%s)", resp.StatusCode, env.Error)
	}

	// buyer can no longer cancel
	resp, _ = doJSON(t, app, "PUT", "/api/orders/"+orderID+"/cancel", buyer, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("late cancel: status %d, want 409", resp.StatusCode)
	}

	resp, env = doJSON(t, app, "PUT", "/api/orders/"+orderID+"/status", seller, map[string]string{
		"status": "DELIVERED",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deliver: status %d (%s)", resp.StatusCode, env.Error)
	}
	var o orderJSON
	decodeData(t, env, &o)
	if o.Status != "DELIVERED" {
		t.Fatalf("final status = %q", o.Status)
	}
}

func TestBuyerCancelPendingOrder(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)

	addToCart(t, app, buyer, repos.SeedProductAlu, 10)
	_, env := doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "Pier 9",
	})
	var data struct {
		Orders []orderJSON `json:"orders"`
	}
	decodeData(t, env, &data)

	resp, env := doJSON(t, app, "PUT", "/api/orders/"+data.Orders[0].ID+"/cancel", buyer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancel: status %d (%s)", resp.StatusCode, env.Error)
	}
	var o orderJSON
	decodeData(t, env, &o)
	if o.Status != "CANCELED" {
		t.Fatalf("status = %q, want CANCELED", o.Status)
	}
}

func TestOrderVisibility(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)
	admin := loginAdmin(t, app)

	addToCart(t, app, buyer, repos.SeedProductVise, 1)
	_, env := doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "Bay 12",
	})
	var data struct {
		Orders []orderJSON `json:"orders"`
	}
	decodeData(t, env, &data)
	orderID := data.Orders[0].ID

	// a different buyer sees 403
	stranger, senv := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email": "other-buyer@example.com", "password": "Passw0rd!",
		"name": "Other", "role": "BUYER", "companyName": "Other Co",
	})
	if stranger.StatusCode != http.StatusCreated {
		t.Fatalf("register buyer: status %d", stranger.StatusCode)
	}
	var reg struct {
		Token string `json:"token"`
	}
	decodeData(t, senv, &reg)
	resp, _ := doJSON(t, app, "GET", "/api/orders/"+orderID, reg.Token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("stranger: status %d, want 403", resp.StatusCode)
	}

	// admin sees everything
	resp, _ = doJSON(t, app, "GET", "/api/orders/"+orderID, admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: status %d", resp.StatusCode)
	}

	// non-UUID order id is a 400 on this resource
	resp, _ = doJSON(t, app, "GET", "/api/orders/not-a-guid", buyer, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad guid: status %d, want 400", resp.StatusCode)
	}
}
