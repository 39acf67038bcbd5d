package handlers_test

import (
	"net/http"
	"testing"

	"tradeyard/internal/repos"
)

func TestSavedProductsRoundTrip(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)

	resp, env := doJSON(t, app, "POST", "/api/saved-products", buyer, map[string]string{
		"productId": repos.SeedProductVise,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("save: status %d (%s)", resp.StatusCode, env.Error)
	}
	// saving twice is a no-op, not an error
	if resp, _ := doJSON(t, app, "POST", "/api/saved-products", buyer, map[string]string{
		"productId": repos.SeedProductVise,
	}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("re-save: status %d", resp.StatusCode)
	}

	_, env = doJSON(t, app, "GET", "/api/saved-products", buyer, nil)
	var data struct {
		Items []struct {
			ProductID string `json:"productId"`
			Name      string `json:"name"`
		} `json:"items"`
	}
	decodeData(t, env, &data)
	if len(data.Items) != 1 || data.Items[0].ProductID != repos.SeedProductVise {
		t.Fatalf("saved list = %+v", data.Items)
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/saved-products/"+repos.SeedProductVise, buyer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unsave: status %d", resp.StatusCode)
	}
	_, env = doJSON(t, app, "GET", "/api/saved-products", buyer, nil)
	decodeData(t, env, &data)
	if len(data.Items) != 0 {
		t.Fatalf("list after unsave = %+v", data.Items)
	}
}

func TestSaveUnknownProductIs404(t *testing.T) {
	app := newTestApp(t)
	buyer := loginBuyer(t, app)
	resp, _ := doJSON(t, app, "POST", "/api/saved-products", buyer, map[string]string{
		"productId": "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
