package handlers

import (
	"errors"
	"time"

	applog "tradeyard/internal/log"
	"tradeyard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Pagination is the block every list payload carries.
type Pagination struct {
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

func NewPagination(page, pageSize, totalItems int) Pagination {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return Pagination{
		Page:            page,
		PageSize:        pageSize,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func ok(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true, "message": message, "data": data, "timestamp": now(),
	})
}

func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true, "message": message, "data": data, "timestamp": now(),
	})
}

func okList(c *fiber.Ctx, message string, items any, p Pagination) error {
	return ok(c, message, fiber.Map{"items": items, "pagination": p})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "timestamp": now()})
}

// failErr maps service sentinel errors onto the contract statuses. Anything
// unrecognized logs and becomes a generic 500 (internals never reach the
// client).
func failErr(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalid):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrBadCreds):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "you do not have access to this resource")
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrConflict):
		return fail(c, fiber.StatusConflict, err.Error())
	}
	applog.Error(c, action, err, nil)
	return fail(c, fiber.StatusInternalServerError, "an unexpected error occurred")
}
