package handlers

import (
	"strings"

	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Admin *services.AdminService
}

// GET /api/admin/users?role=&page=&pageSize=
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	role := strings.ToUpper(c.Query("role"))
	switch role {
	case "", "BUYER", "SELLER", "ADMIN":
	default:
		return fail(c, fiber.StatusBadRequest, "role must be one of: BUYER, SELLER, ADMIN")
	}
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 100)
	users, total, err := h.Admin.ListUsers(role, page, pageSize)
	if err != nil {
		return failErr(c, "admin.users.fail", err)
	}
	return okList(c, "users retrieved", users, NewPagination(page, pageSize, total))
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid user id")
	}
	if id == callerID(c) {
		return fail(c, fiber.StatusConflict, "administrators cannot delete their own account")
	}
	if err := h.Admin.DeleteUser(id); err != nil {
		return failErr(c, "admin.users.delete.fail", err)
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"target_user_id": id})
	return ok(c, "user deleted", nil)
}

type verifySellerRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// PUT /api/admin/sellers/:id/verify
func (h *AdminHandler) VerifySeller(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid seller id")
	}
	var req verifySellerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Admin.VerifySeller(id, *req.Verified); err != nil {
		return failErr(c, "admin.sellers.verify.fail", err)
	}
	applog.Audit(c, "admin.sellers.verify", map[string]any{"seller_id": id, "verified": *req.Verified})
	return ok(c, "seller verification updated", nil)
}

// GET /api/admin/orders?page=&pageSize=
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 100)
	orders, total, err := h.Admin.ListOrders(page, pageSize)
	if err != nil {
		return failErr(c, "admin.orders.fail", err)
	}
	return okList(c, "orders retrieved", orders, NewPagination(page, pageSize, total))
}

// GET /api/admin/analytics
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	a, err := h.Admin.Dashboard()
	if err != nil {
		return failErr(c, "admin.analytics.fail", err)
	}
	return ok(c, "analytics retrieved", a)
}

// GET /api/admin/payments?page=&pageSize=
func (h *AdminHandler) Payments(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 100)
	rows, total, err := h.Admin.PaymentReport(page, pageSize)
	if err != nil {
		return failErr(c, "admin.payments.fail", err)
	}
	return okList(c, "payment report retrieved", rows, NewPagination(page, pageSize, total))
}

// POST /api/admin/payments/backfill-descriptions
func (h *AdminHandler) BackfillPayments(c *fiber.Ctx) error {
	updated, err := h.Admin.BackfillPaymentDescriptions()
	if err != nil {
		return failErr(c, "admin.payments.backfill.fail", err)
	}
	applog.Audit(c, "admin.payments.backfill", map[string]any{"updated": updated})
	return ok(c, "payment descriptions backfilled", fiber.Map{"updated": updated})
}
