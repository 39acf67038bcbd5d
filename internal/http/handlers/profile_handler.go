package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
	Reviews  *services.ReviewService
	Certs    *services.CertificationService
}

// GET /api/profile/buyer (BUYER)
func (h *ProfileHandler) GetBuyer(c *fiber.Ctx) error {
	p, err := h.Profiles.Buyer(callerID(c))
	if err != nil {
		return failErr(c, "profile.buyer.get.fail", err)
	}
	return ok(c, "buyer profile", p)
}

type buyerProfileRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	ContactName string `json:"contactName" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=30"`
	Country     string `json:"country" validate:"max=2"`
}

// PUT /api/profile/buyer (BUYER)
func (h *ProfileHandler) UpdateBuyer(c *fiber.Ctx) error {
	var req buyerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Profiles.UpdateBuyer(callerID(c), domain.BuyerProfile{
		CompanyName: req.CompanyName, ContactName: req.ContactName,
		Phone: req.Phone, Country: req.Country,
	})
	if err != nil {
		return failErr(c, "profile.buyer.update.fail", err)
	}
	applog.Audit(c, "profile.buyer.update", nil)
	return ok(c, "buyer profile updated", p)
}

// GET /api/profile/seller (SELLER)
func (h *ProfileHandler) GetSeller(c *fiber.Ctx) error {
	p, err := h.Profiles.Seller(callerID(c))
	if err != nil {
		return failErr(c, "profile.seller.get.fail", err)
	}
	return ok(c, "seller profile", p)
}

type sellerProfileRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Website     string `json:"website" validate:"max=200"`
	Phone       string `json:"phone" validate:"max=30"`
	Country     string `json:"country" validate:"max=2"`
}

// PUT /api/profile/seller (SELLER)
func (h *ProfileHandler) UpdateSeller(c *fiber.Ctx) error {
	var req sellerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Profiles.UpdateSeller(callerID(c), domain.SellerProfile{
		CompanyName: req.CompanyName, Description: req.Description,
		Website: req.Website, Phone: req.Phone, Country: req.Country,
	})
	if err != nil {
		return failErr(c, "profile.seller.update.fail", err)
	}
	applog.Audit(c, "profile.seller.update", nil)
	return ok(c, "seller profile updated", p)
}

// GET /api/sellers (anonymous; verified only)
func (h *ProfileHandler) ListSellers(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 50)
	sellers, total, err := h.Profiles.ListPublicSellers(c.Query("q"), page, pageSize)
	if err != nil {
		return failErr(c, "sellers.list.fail", err)
	}
	if sellers == nil {
		sellers = []domain.SellerProfile{}
	}
	return okList(c, "sellers", sellers, NewPagination(page, pageSize, total))
}

// GET /api/sellers/:id (anonymous; verified only)
func (h *ProfileHandler) GetPublicSeller(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid seller id")
	}
	p, err := h.Profiles.PublicSeller(id)
	if err != nil {
		return failErr(c, "sellers.get.fail", err)
	}
	return ok(c, "seller", p)
}

// GET /api/sellers/:id/reviews (anonymous)
func (h *ProfileHandler) SellerReviews(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 10, 50)
	reviews, total, summary, err := h.Reviews.ListBySeller(c.Params("id"), page, pageSize)
	if err != nil {
		return failErr(c, "sellers.reviews.fail", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return ok(c, "seller reviews", fiber.Map{
		"items":      reviews,
		"summary":    summary,
		"pagination": NewPagination(page, pageSize, total),
	})
}

// GET /api/sellers/:id/certifications (anonymous; approved only)
func (h *ProfileHandler) SellerCertifications(c *fiber.Ctx) error {
	certs, err := h.Certs.ListApproved(c.Params("id"))
	if err != nil {
		return failErr(c, "sellers.certs.fail", err)
	}
	if certs == nil {
		certs = []domain.Certification{}
	}
	return ok(c, "seller certifications", certs)
}
