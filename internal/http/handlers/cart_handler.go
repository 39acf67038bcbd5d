package handlers

import (
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

// GET /api/cart (BUYER)
func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(callerID(c))
	if err != nil {
		return failErr(c, "cart.view.fail", err)
	}
	return ok(c, "cart", cv)
}

type cartAddRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// POST /api/cart/items (BUYER)
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartAddRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Cart.Add(callerID(c), req.ProductID, validate.Qty(req.Quantity)); err != nil {
		return failErr(c, "cart.add.fail", err)
	}
	applog.Audit(c, "cart.add", map[string]any{"product_id": req.ProductID, "qty": req.Quantity})
	cv, err := h.Cart.View(callerID(c))
	if err != nil {
		return failErr(c, "cart.view.fail", err)
	}
	return ok(c, "item added to cart", cv)
}

type cartQtyRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// PUT /api/cart/items/:productId (BUYER)
func (h *CartHandler) SetQty(c *fiber.Ctx) error {
	pid := c.Params("productId")
	if !validate.UUID(pid) {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req cartQtyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Cart.SetQty(callerID(c), pid, validate.Qty(req.Quantity)); err != nil {
		return failErr(c, "cart.setqty.fail", err)
	}
	cv, err := h.Cart.View(callerID(c))
	if err != nil {
		return failErr(c, "cart.view.fail", err)
	}
	return ok(c, "cart updated", cv)
}

// DELETE /api/cart/items/:productId (BUYER)
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	pid := c.Params("productId")
	if !validate.UUID(pid) {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Cart.Remove(callerID(c), pid); err != nil {
		return failErr(c, "cart.remove.fail", err)
	}
	return ok(c, "item removed", nil)
}

// DELETE /api/cart (BUYER)
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Clear(callerID(c)); err != nil {
		return failErr(c, "cart.clear.fail", err)
	}
	return ok(c, "cart cleared", nil)
}
