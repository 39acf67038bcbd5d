package handlers_test

import (
	"net/http"
	"testing"
)

type contentItemJSON struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

func TestContentPublishingFlow(t *testing.T) {
	app := newTestApp(t)
	admin := loginAdmin(t, app)

	// a draft is invisible publicly
	resp, env := doJSON(t, app, "POST", "/api/admin/content/items", admin, map[string]any{
		"categoryId": "cc-guides", "title": "How To Vet A Supplier",
		"body": "Check certifications first.", "published": false,
		"tagIds": []string{"ct-sourcing"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d (%s)", resp.StatusCode, env.Error)
	}
	var draft contentItemJSON
	decodeData(t, env, &draft)
	if draft.Slug != "how-to-vet-a-supplier" {
		t.Fatalf("slug = %q", draft.Slug)
	}

	resp, _ = doJSON(t, app, "GET", "/api/content/items/"+draft.Slug, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("draft visible publicly: status %d", resp.StatusCode)
	}

	// publish it
	resp, env = doJSON(t, app, "PUT", "/api/admin/content/items/"+draft.ID, admin, map[string]any{
		"categoryId": "cc-guides", "title": "How To Vet A Supplier",
		"body": "Check certifications first.", "published": true,
		"tagIds": []string{"ct-sourcing"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish: status %d (%s)", resp.StatusCode, env.Error)
	}

	resp, env = doJSON(t, app, "GET", "/api/content/items/"+draft.Slug, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("published get: status %d", resp.StatusCode)
	}
	var it contentItemJSON
	decodeData(t, env, &it)
	if len(it.Tags) != 1 || it.Tags[0] != "sourcing" {
		t.Fatalf("tags = %v", it.Tags)
	}

	// tag filter on the list
	_, env = doJSON(t, app, "GET", "/api/content/items?tag=sourcing", "", nil)
	var data struct {
		Items []contentItemJSON `json:"items"`
	}
	decodeData(t, env, &data)
	if len(data.Items) != 1 || data.Items[0].ID != draft.ID {
		t.Fatalf("tag filter = %+v", data.Items)
	}
	_, env = doJSON(t, app, "GET", "/api/content/items?tag=logistics", "", nil)
	decodeData(t, env, &data)
	if len(data.Items) != 0 {
		t.Fatalf("wrong tag matched: %+v", data.Items)
	}

	// non-admins cannot manage content
	buyer := loginBuyer(t, app)
	resp, _ = doJSON(t, app, "DELETE", "/api/admin/content/items/"+draft.ID, buyer, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("buyer delete: status %d, want 403", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "DELETE", "/api/admin/content/items/"+draft.ID, admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin delete: status %d", resp.StatusCode)
	}
}

func TestContentTaxonomies(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "GET", "/api/content/categories", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("categories: status %d", resp.StatusCode)
	}
	var cats struct {
		Items []struct {
			Slug string `json:"slug"`
		} `json:"items"`
	}
	decodeData(t, env, &cats)
	if len(cats.Items) < 2 {
		t.Fatalf("seeded categories missing: %+v", cats.Items)
	}

	admin := loginAdmin(t, app)
	resp, env = doJSON(t, app, "POST", "/api/admin/content/tags", admin, map[string]string{
		"name": "Cold Chain",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create tag: status %d", resp.StatusCode)
	}
	var tag struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	decodeData(t, env, &tag)
	if tag.Slug != "cold-chain" {
		t.Fatalf("tag slug = %q", tag.Slug)
	}
	if resp, _ := doJSON(t, app, "DELETE", "/api/admin/content/tags/"+tag.ID, admin, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("delete tag: status %d", resp.StatusCode)
	}
}
