package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type RFQHandler struct {
	RFQs   *services.RFQService
	Quotes *services.QuoteService
}

type rfqCreateRequest struct {
	Title            string `json:"title" validate:"required,max=200"`
	Description      string `json:"description" validate:"max=5000"`
	CategoryID       string `json:"categoryId" validate:"max=64"`
	Quantity         int    `json:"quantity" validate:"required,gte=1"`
	Unit             string `json:"unit" validate:"max=30"`
	DeliveryDeadline string `json:"deliveryDeadline" validate:"max=40"`
}

// POST /api/rfqs (BUYER)
func (h *RFQHandler) Create(c *fiber.Ctx) error {
	var req rfqCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	rfq, err := h.RFQs.Create(callerID(c), domain.RFQ{
		Title: req.Title, Description: req.Description, CategoryID: req.CategoryID,
		Quantity: req.Quantity, Unit: req.Unit, DeliveryDeadline: req.DeliveryDeadline,
	})
	if err != nil {
		return failErr(c, "rfq.create.fail", err)
	}
	applog.Audit(c, "rfq.create", map[string]any{"rfq_id": rfq.ID})
	return created(c, "request for quote created", rfq)
}

// GET /api/rfqs (anonymous; open requests only)
func (h *RFQHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 10, 50)
	rfqs, total, err := h.RFQs.ListOpen(c.Query("categoryId"), page, pageSize)
	if err != nil {
		return failErr(c, "rfq.list.fail", err)
	}
	if rfqs == nil {
		rfqs = []domain.RFQ{}
	}
	return okList(c, "open requests", rfqs, NewPagination(page, pageSize, total))
}

// GET /api/rfqs/mine (BUYER)
func (h *RFQHandler) Mine(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 10, 50)
	rfqs, total, err := h.RFQs.ListMine(callerID(c), page, pageSize)
	if err != nil {
		return failErr(c, "rfq.mine.fail", err)
	}
	if rfqs == nil {
		rfqs = []domain.RFQ{}
	}
	return okList(c, "my requests", rfqs, NewPagination(page, pageSize, total))
}

// GET /api/rfqs/:id (anonymous). Non-UUID ids are 404 here, matching the
// product lookup policy.
func (h *RFQHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusNotFound, "request not found")
	}
	rfq, err := h.RFQs.Get(id)
	if err != nil {
		return failErr(c, "rfq.get.fail", err)
	}
	return ok(c, "request", rfq)
}

// PUT /api/rfqs/:id/close (BUYER, owner)
func (h *RFQHandler) Close(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusNotFound, "request not found")
	}
	rfq, err := h.RFQs.Close(callerID(c), id)
	if err != nil {
		return failErr(c, "rfq.close.fail", err)
	}
	applog.Audit(c, "rfq.close", map[string]any{"rfq_id": id})
	return ok(c, "request closed", rfq)
}

// DELETE /api/rfqs/:id (BUYER, owner, no quotes yet)
func (h *RFQHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusNotFound, "request not found")
	}
	if err := h.RFQs.Delete(callerID(c), id); err != nil {
		return failErr(c, "rfq.delete.fail", err)
	}
	applog.Audit(c, "rfq.delete", map[string]any{"rfq_id": id})
	return ok(c, "request deleted", nil)
}

// GET /api/rfqs/:id/quotes (BUYER, owner)
func (h *RFQHandler) QuotesForRFQ(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusNotFound, "request not found")
	}
	quotes, err := h.Quotes.ListForRFQ(callerID(c), id)
	if err != nil {
		return failErr(c, "rfq.quotes.fail", err)
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return ok(c, "quotes for request", fiber.Map{"items": quotes})
}
