package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

type reviewCreateRequest struct {
	SellerID  string `json:"sellerId" validate:"required,uuid"`
	ProductID string `json:"productId" validate:"omitempty,uuid"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title     string `json:"title" validate:"max=200"`
	Body      string `json:"body" validate:"max=5000"`
}

// POST /api/reviews (BUYER)
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req reviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	rv, err := h.Reviews.Create(callerID(c), domain.Review{
		SellerID: req.SellerID, ProductID: req.ProductID,
		Rating: req.Rating, Title: req.Title, Body: req.Body,
	})
	if err != nil {
		return failErr(c, "reviews.create.fail", err)
	}
	applog.Audit(c, "reviews.create", map[string]any{"review_id": rv.ID, "seller_id": rv.SellerID})
	return created(c, "review published", rv)
}

type reviewUpdateRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title  string `json:"title" validate:"max=200"`
	Body   string `json:"body" validate:"max=5000"`
}

// PUT /api/reviews/:id (author only)
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid review id")
	}
	var req reviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	rv, err := h.Reviews.Update(callerID(c), id, domain.Review{
		Rating: req.Rating, Title: req.Title, Body: req.Body,
	})
	if err != nil {
		return failErr(c, "reviews.update.fail", err)
	}
	applog.Audit(c, "reviews.update", map[string]any{"review_id": id})
	return ok(c, "review updated", rv)
}

// DELETE /api/reviews/:id (author only)
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid review id")
	}
	if err := h.Reviews.Delete(callerID(c), id); err != nil {
		return failErr(c, "reviews.delete.fail", err)
	}
	applog.Audit(c, "reviews.delete", map[string]any{"review_id": id})
	return ok(c, "review deleted", nil)
}
