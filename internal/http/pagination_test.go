package handlers_test

import (
	"net/http"
	"testing"
)

func TestAdminUsersPageSizeClamp(t *testing.T) {
	app := newTestApp(t)
	admin := loginAdmin(t, app)

	resp, env := doJSON(t, app, "GET", "/api/admin/users?pageSize=500", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var data listData
	decodeData(t, env, &data)
	if data.Pagination.PageSize != 100 {
		t.Fatalf("pageSize = %d, want clamp to 100", data.Pagination.PageSize)
	}

	// page below 1 clamps to 1
	resp, env = doJSON(t, app, "GET", "/api/admin/users?page=-3", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	decodeData(t, env, &data)
	if data.Pagination.Page != 1 {
		t.Fatalf("page = %d, want 1", data.Pagination.Page)
	}
}

func TestPaginationMath(t *testing.T) {
	app := newTestApp(t)

	// two seeded products, one per page
	resp, env := doJSON(t, app, "GET", "/api/products?pageSize=1", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var data listData
	decodeData(t, env, &data)
	p := data.Pagination
	if p.TotalItems != 2 || p.TotalPages != 2 {
		t.Fatalf("pagination = %+v", p)
	}
	if p.HasPreviousPage || !p.HasNextPage {
		t.Fatalf("page 1 flags = %+v", p)
	}
	if len(data.Items) != 1 {
		t.Fatalf("items on page 1 = %d", len(data.Items))
	}

	_, env = doJSON(t, app, "GET", "/api/products?pageSize=1&page=2", "", nil)
	decodeData(t, env, &data)
	p = data.Pagination
	if !p.HasPreviousPage || p.HasNextPage {
		t.Fatalf("page 2 flags = %+v", p)
	}
}

func TestRoleFilterOnAdminUsers(t *testing.T) {
	app := newTestApp(t)
	admin := loginAdmin(t, app)

	resp, env := doJSON(t, app, "GET", "/api/admin/users?role=SELLER", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var data struct {
		Items []struct {
			Role string `json:"role"`
		} `json:"items"`
	}
	decodeData(t, env, &data)
	if len(data.Items) == 0 {
		t.Fatal("no sellers returned")
	}
	for _, u := range data.Items {
		if u.Role != "SELLER" {
			t.Fatalf("role filter leaked %q", u.Role)
		}
	}

	resp, _ = doJSON(t, app, "GET", "/api/admin/users?role=WIZARD", admin, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad role: status %d, want 400", resp.StatusCode)
	}
}
