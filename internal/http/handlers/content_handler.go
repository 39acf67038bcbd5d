package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	Content *services.ContentService
}

// GET /api/content/items?categoryId=&tag=&page=&pageSize=
func (h *ContentHandler) ListItems(c *fiber.Ctx) error {
	categoryID := c.Query("categoryId")
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 10, 50)
	items, total, err := h.Content.ListPublished(categoryID, c.Query("tag"), page, pageSize)
	if err != nil {
		return failErr(c, "content.items.fail", err)
	}
	return okList(c, "content retrieved", items, NewPagination(page, pageSize, total))
}

// GET /api/content/items/:slug
func (h *ContentHandler) GetItem(c *fiber.Ctx) error {
	it, err := h.Content.PublishedBySlug(c.Params("slug"))
	if err != nil {
		return failErr(c, "content.item.fail", err)
	}
	return ok(c, "content retrieved", it)
}

// GET /api/content/categories
func (h *ContentHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.Content.ListCategories()
	if err != nil {
		return failErr(c, "content.categories.fail", err)
	}
	return ok(c, "content categories retrieved", fiber.Map{"items": cats})
}

// GET /api/content/tags
func (h *ContentHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.Content.ListTags()
	if err != nil {
		return failErr(c, "content.tags.fail", err)
	}
	return ok(c, "content tags retrieved", fiber.Map{"items": tags})
}

// Content categories and tags keep slug-style ids, same as catalog
// categories, so ids here are plain strings rather than UUIDs.
type contentItemRequest struct {
	CategoryID string   `json:"categoryId" validate:"required,max=64"`
	Title      string   `json:"title" validate:"required,max=300"`
	Body       string   `json:"body" validate:"required"`
	Published  bool     `json:"published"`
	TagIDs     []string `json:"tagIds" validate:"dive,max=64"`
}

// POST /api/admin/content/items (ADMIN)
func (h *ContentHandler) CreateItem(c *fiber.Ctx) error {
	var req contentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	it, err := h.Content.CreateItem(domain.ContentItem{
		CategoryID: req.CategoryID, Title: req.Title, Body: req.Body, Published: req.Published,
	}, req.TagIDs)
	if err != nil {
		return failErr(c, "content.create.fail", err)
	}
	applog.Audit(c, "content.create", map[string]any{"item_id": it.ID, "slug": it.Slug})
	return created(c, "content item created", it)
}

// PUT /api/admin/content/items/:id (ADMIN)
func (h *ContentHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid content item id")
	}
	var req contentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	it, err := h.Content.UpdateItem(id, domain.ContentItem{
		CategoryID: req.CategoryID, Title: req.Title, Body: req.Body, Published: req.Published,
	}, req.TagIDs)
	if err != nil {
		return failErr(c, "content.update.fail", err)
	}
	applog.Audit(c, "content.update", map[string]any{"item_id": id})
	return ok(c, "content item updated", it)
}

// DELETE /api/admin/content/items/:id (ADMIN)
func (h *ContentHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid content item id")
	}
	if err := h.Content.DeleteItem(id); err != nil {
		return failErr(c, "content.delete.fail", err)
	}
	applog.Audit(c, "content.delete", map[string]any{"item_id": id})
	return ok(c, "content item deleted", nil)
}

type contentNameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// POST /api/admin/content/categories (ADMIN)
func (h *ContentHandler) CreateCategory(c *fiber.Ctx) error {
	var req contentNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	cat, err := h.Content.CreateCategory(req.Name)
	if err != nil {
		return failErr(c, "content.category.create.fail", err)
	}
	return created(c, "content category created", cat)
}

// DELETE /api/admin/content/categories/:id (ADMIN)
func (h *ContentHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Content.DeleteCategory(id); err != nil {
		return failErr(c, "content.category.delete.fail", err)
	}
	return ok(c, "content category deleted", nil)
}

// POST /api/admin/content/tags (ADMIN)
func (h *ContentHandler) CreateTag(c *fiber.Ctx) error {
	var req contentNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	tag, err := h.Content.CreateTag(req.Name)
	if err != nil {
		return failErr(c, "content.tag.create.fail", err)
	}
	return created(c, "content tag created", tag)
}

// DELETE /api/admin/content/tags/:id (ADMIN)
func (h *ContentHandler) DeleteTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Content.DeleteTag(id); err != nil {
		return failErr(c, "content.tag.delete.fail", err)
	}
	return ok(c, "content tag deleted", nil)
}
