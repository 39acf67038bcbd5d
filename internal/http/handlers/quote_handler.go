package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type QuoteHandler struct {
	Quotes *services.QuoteService
}

type quoteCreateRequest struct {
	RFQID        string  `json:"rfqId" validate:"required,uuid"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Currency     string  `json:"currency" validate:"omitempty,len=3"`
	DeliveryDays int     `json:"deliveryDays" validate:"gte=0"`
	ValidUntil   string  `json:"validUntil" validate:"max=40"`
	Notes        string  `json:"notes" validate:"max=2000"`
}

// POST /api/quotes (SELLER)
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var req quoteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	q, err := h.Quotes.Create(callerID(c), domain.Quote{
		RFQID: req.RFQID, Price: req.Price, Currency: req.Currency,
		DeliveryDays: req.DeliveryDays, ValidUntil: req.ValidUntil, Notes: req.Notes,
	})
	if err != nil {
		return failErr(c, "quotes.create.fail", err)
	}
	applog.Audit(c, "quotes.create", map[string]any{"quote_id": q.ID, "rfq_id": q.RFQID})
	return created(c, "quote submitted", q)
}

// GET /api/quotes/mine (SELLER)
func (h *QuoteHandler) Mine(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 10, 50)
	quotes, total, err := h.Quotes.ListMine(callerID(c), page, pageSize)
	if err != nil {
		return failErr(c, "quotes.mine.fail", err)
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return okList(c, "my quotes", quotes, NewPagination(page, pageSize, total))
}

type quoteUpdateRequest struct {
	Price        float64 `json:"price" validate:"required,gt=0"`
	Currency     string  `json:"currency" validate:"omitempty,len=3"`
	DeliveryDays int     `json:"deliveryDays" validate:"gte=0"`
	ValidUntil   string  `json:"validUntil" validate:"max=40"`
	Notes        string  `json:"notes" validate:"max=2000"`
}

// PUT /api/quotes/:id (SELLER, owner, while pending)
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid quote id")
	}
	var req quoteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	q, err := h.Quotes.Update(callerID(c), id, domain.Quote{
		Price: req.Price, Currency: req.Currency,
		DeliveryDays: req.DeliveryDays, ValidUntil: req.ValidUntil, Notes: req.Notes,
	})
	if err != nil {
		return failErr(c, "quotes.update.fail", err)
	}
	applog.Audit(c, "quotes.update", map[string]any{"quote_id": id})
	return ok(c, "quote updated", q)
}

// PUT /api/quotes/:id/withdraw (SELLER, owner, while pending)
func (h *QuoteHandler) Withdraw(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid quote id")
	}
	q, err := h.Quotes.Withdraw(callerID(c), id)
	if err != nil {
		return failErr(c, "quotes.withdraw.fail", err)
	}
	applog.Audit(c, "quotes.withdraw", map[string]any{"quote_id": id})
	return ok(c, "quote withdrawn", q)
}

// PUT /api/quotes/:id/accept (BUYER owning the request)
func (h *QuoteHandler) Accept(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid quote id")
	}
	q, err := h.Quotes.Accept(callerID(c), id)
	if err != nil {
		return failErr(c, "quotes.accept.fail", err)
	}
	applog.Audit(c, "quotes.accept", map[string]any{"quote_id": id, "rfq_id": q.RFQID})
	return ok(c, "quote accepted", q)
}
