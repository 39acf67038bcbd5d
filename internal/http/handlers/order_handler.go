package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type checkoutRequest struct {
	ShippingAddress string `json:"shippingAddress" validate:"required,max=500"`
}

// POST /api/orders (BUYER). The cart is split into one order per seller.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	orders, err := h.Orders.Checkout(callerID(c), req.ShippingAddress)
	if err != nil {
		return failErr(c, "orders.create.fail", err)
	}
	applog.Audit(c, "orders.create", map[string]any{
		"group_id": orders[0].GroupID, "orders": len(orders),
	})
	return created(c, "order placed", fiber.Map{
		"groupId": orders[0].GroupID,
		"orders":  orders,
	})
}

// GET /api/orders (BUYER: own, SELLER: own, ADMIN: all)
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 10, 50)
	orders, total, err := h.Orders.List(callerID(c), callerRole(c), page, pageSize)
	if err != nil {
		return failErr(c, "orders.list.fail", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return okList(c, "orders", orders, NewPagination(page, pageSize, total))
}

// GET /api/orders/:id (buyer owner, seller owner, or admin)
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid order id")
	}
	o, items, err := h.Orders.Get(callerID(c), callerRole(c), id)
	if err != nil {
		return failErr(c, "orders.get.fail", err)
	}
	return ok(c, "order", fiber.Map{"order": o, "items": items})
}

type orderStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=CONFIRMED SHIPPED DELIVERED"`
	TrackingNumber string `json:"trackingNumber" validate:"max=100"`
}

// PUT /api/orders/:id/status (SELLER, owner)
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid order id")
	}
	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	o, err := h.Orders.UpdateStatus(callerID(c), id, req.Status, req.TrackingNumber)
	if err != nil {
		return failErr(c, "orders.status.fail", err)
	}
	applog.Audit(c, "orders.status", map[string]any{"order_id": id, "status": req.Status})
	return ok(c, "order status updated", o)
}

// PUT /api/orders/:id/cancel (BUYER, owner, while pending)
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid order id")
	}
	o, err := h.Orders.Cancel(callerID(c), id)
	if err != nil {
		return failErr(c, "orders.cancel.fail", err)
	}
	applog.Audit(c, "orders.cancel", map[string]any{"order_id": id})
	return ok(c, "order canceled", o)
}
