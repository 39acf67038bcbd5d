package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProtectedRoutesRequireBearer(t *testing.T) {
	app := newTestApp(t)

	// no header at all
	resp, env := doJSON(t, app, "GET", "/api/auth/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no header: status %d, want 401", resp.StatusCode)
	}
	if env.Error == "" {
		t.Fatal("no header: expected error envelope")
	}

	// malformed header
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")
	r2, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if r2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("malformed header: status %d, want 401", r2.StatusCode)
	}

	// garbage token
	resp, _ = doJSON(t, app, "GET", "/api/auth/me", "not.a.jwt", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d, want 401", resp.StatusCode)
	}
}

func TestRoleGuards(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)
	seller := loginSeller(t, app)

	// buyer cannot list their own products (seller route)
	resp, env := doJSON(t, app, "GET", "/api/products/mine", buyer, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("buyer on seller route: status %d (%s)", resp.StatusCode, env.Error)
	}

	// seller cannot view the cart (buyer route)
	resp, _ = doJSON(t, app, "GET", "/api/cart", seller, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("seller on buyer route: status %d", resp.StatusCode)
	}

	// neither may touch admin
	for _, token := range []string{buyer, seller} {
		resp, _ = doJSON(t, app, "GET", "/api/admin/users", token, nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("non-admin on admin route: status %d", resp.StatusCode)
		}
	}

	admin := loginAdmin(t, app)
	resp, _ = doJSON(t, app, "GET", "/api/admin/users", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin on admin route: status %d", resp.StatusCode)
	}
}

func TestCaseInsensitiveRoutes(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, "POST", "/api/Auth/login", "", map[string]string{
		"email": "buyer@tradeyard.test", "password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/api/Auth/login: status %d, want 200", resp.StatusCode)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app := newTestApp(t)
	resp, env := doJSON(t, app, "GET", "/api/does-not-exist", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if env.Error == "" || env.Timestamp == "" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}
