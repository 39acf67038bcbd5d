package handlers

import (
	"tradeyard/internal/repos"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog  *services.CatalogService
	Profiles *services.ProfileService
}

// GET /api/search?q=&type=products|sellers
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 50)

	switch c.Query("type", "products") {
	case "products":
		items, total, err := h.Catalog.Search(repos.ProductFilter{Q: q}, page, pageSize)
		if err != nil {
			return failErr(c, "search.products.fail", err)
		}
		return okList(c, "search results retrieved", items, NewPagination(page, pageSize, total))
	case "sellers":
		items, total, err := h.Profiles.ListPublicSellers(q, page, pageSize)
		if err != nil {
			return failErr(c, "search.sellers.fail", err)
		}
		return okList(c, "search results retrieved", items, NewPagination(page, pageSize, total))
	default:
		return fail(c, fiber.StatusBadRequest, "type must be one of: products, sellers")
	}
}
