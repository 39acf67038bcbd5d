package handlers

import (
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CertificationHandler struct {
	Certs *services.CertificationService
}

type certificationRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Issuer      string `json:"issuer" validate:"required,max=200"`
	DocumentURL string `json:"documentUrl" validate:"omitempty,url,max=500"`
}

// POST /api/certifications (SELLER)
func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	var req certificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	cert, err := h.Certs.Create(callerID(c), domain.Certification{
		Name: req.Name, Issuer: req.Issuer, DocumentURL: req.DocumentURL,
	})
	if err != nil {
		return failErr(c, "certifications.create.fail", err)
	}
	applog.Audit(c, "certifications.create", map[string]any{"certification_id": cert.ID})
	return created(c, "certification submitted for review", cert)
}

// GET /api/certifications/mine (SELLER)
func (h *CertificationHandler) Mine(c *fiber.Ctx) error {
	certs, err := h.Certs.ListMine(callerID(c))
	if err != nil {
		return failErr(c, "certifications.mine.fail", err)
	}
	return ok(c, "certifications retrieved", fiber.Map{"items": certs})
}

type certificationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// PUT /api/admin/certifications/:id/status (ADMIN)
func (h *CertificationHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid certification id")
	}
	var req certificationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	cert, err := h.Certs.SetStatus(id, req.Status)
	if err != nil {
		return failErr(c, "certifications.status.fail", err)
	}
	applog.Audit(c, "certifications.status", map[string]any{"certification_id": id, "status": req.Status})
	return ok(c, "certification status updated", cert)
}
