package handlers

import (
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SavedProductHandler struct {
	Saved *services.SavedProductService
}

// GET /api/saved-products (BUYER)
func (h *SavedProductHandler) List(c *fiber.Ctx) error {
	items, err := h.Saved.List(callerID(c))
	if err != nil {
		return failErr(c, "saved.list.fail", err)
	}
	return ok(c, "saved products retrieved", fiber.Map{"items": items})
}

type saveProductRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

// POST /api/saved-products (BUYER)
func (h *SavedProductHandler) Save(c *fiber.Ctx) error {
	var req saveProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Saved.Save(callerID(c), req.ProductID); err != nil {
		return failErr(c, "saved.save.fail", err)
	}
	applog.Audit(c, "saved.save", map[string]any{"product_id": req.ProductID})
	return created(c, "product saved", nil)
}

// DELETE /api/saved-products/:productId (BUYER)
func (h *SavedProductHandler) Unsave(c *fiber.Ctx) error {
	id := c.Params("productId")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Saved.Unsave(callerID(c), id); err != nil {
		return failErr(c, "saved.unsave.fail", err)
	}
	return ok(c, "product removed from saved list", nil)
}
