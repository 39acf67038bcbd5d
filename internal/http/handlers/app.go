package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"tradeyard/internal/config"
	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
)

// NewApp assembles the fiber application with all middleware and routes.
// Route matching is case-insensitive, so legacy clients hitting /api/Auth
// keep working.
func NewApp(db *sqlx.DB, cfg config.Config) *fiber.App {
	deps := NewDeps(db, cfg)

	app := fiber.New(fiber.Config{
		CaseSensitive: false,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok && fe.Code < fiber.StatusInternalServerError {
				return fail(c, fe.Code, fe.Message)
			}
			applog.Error(c, "server.error", err, nil)
			return fail(c, fiber.StatusInternalServerError, "an unexpected error occurred")
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return fail(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	}))

	auth := RequireAuth(deps.Tokens)
	buyer := RequireRole(domain.RoleBuyer)
	seller := RequireRole(domain.RoleSeller)
	admin := RequireRole(domain.RoleAdmin)

	api := app.Group("/api")

	// Auth. Login is throttled harder than the global limiter.
	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return fail(c, fiber.StatusTooManyRequests, "too many attempts, try again later")
		},
	})
	ag := api.Group("/auth")
	ag.Post("/register", deps.AuthHandler.Register)
	ag.Post("/login", loginLimiter, deps.AuthHandler.Login)
	ag.Post("/forgot-password", deps.AuthHandler.ForgotPassword)
	ag.Post("/reset-password", deps.AuthHandler.ResetPassword)
	ag.Post("/change-password", auth, deps.AuthHandler.ChangePassword)
	ag.Get("/me", auth, deps.AuthHandler.Me)

	// Profiles.
	api.Get("/profile/buyer", auth, buyer, deps.ProfileHandler.GetBuyer)
	api.Put("/profile/buyer", auth, buyer, deps.ProfileHandler.UpdateBuyer)
	api.Get("/profile/seller", auth, seller, deps.ProfileHandler.GetSeller)
	api.Put("/profile/seller", auth, seller, deps.ProfileHandler.UpdateSeller)
	api.Get("/sellers", deps.ProfileHandler.ListSellers)
	api.Get("/sellers/:id", deps.ProfileHandler.GetPublicSeller)
	api.Get("/sellers/:id/reviews", deps.ProfileHandler.SellerReviews)
	api.Get("/sellers/:id/certifications", deps.ProfileHandler.SellerCertifications)

	// Catalog.
	api.Get("/categories", deps.ProductHandler.Categories)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/mine", auth, seller, deps.ProductHandler.Mine)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Get("/products/:id/availability", deps.ProductHandler.Availability)
	api.Post("/products", auth, seller, deps.ProductHandler.Create)
	api.Put("/products/:id", auth, seller, deps.ProductHandler.Update)
	api.Delete("/products/:id", auth, seller, deps.ProductHandler.Delete)

	// Cart.
	api.Get("/cart", auth, buyer, deps.CartHandler.View)
	api.Post("/cart/items", auth, buyer, deps.CartHandler.Add)
	api.Put("/cart/items/:productId", auth, buyer, deps.CartHandler.SetQty)
	api.Delete("/cart/items/:productId", auth, buyer, deps.CartHandler.Remove)
	api.Delete("/cart", auth, buyer, deps.CartHandler.Clear)

	// Orders.
	api.Post("/orders", auth, buyer, deps.OrderHandler.Create)
	api.Get("/orders", auth, deps.OrderHandler.List)
	api.Get("/orders/:id", auth, deps.OrderHandler.Get)
	api.Put("/orders/:id/status", auth, seller, deps.OrderHandler.UpdateStatus)
	api.Put("/orders/:id/cancel", auth, buyer, deps.OrderHandler.Cancel)

	// RFQs and quotes.
	api.Post("/rfqs", auth, buyer, deps.RFQHandler.Create)
	api.Get("/rfqs", deps.RFQHandler.List)
	api.Get("/rfqs/mine", auth, buyer, deps.RFQHandler.Mine)
	api.Get("/rfqs/:id", deps.RFQHandler.Get)
	api.Put("/rfqs/:id/close", auth, buyer, deps.RFQHandler.Close)
	api.Delete("/rfqs/:id", auth, buyer, deps.RFQHandler.Delete)
	api.Get("/rfqs/:id/quotes", auth, buyer, deps.RFQHandler.QuotesForRFQ)

	api.Post("/quotes", auth, seller, deps.QuoteHandler.Create)
	api.Get("/quotes/mine", auth, seller, deps.QuoteHandler.Mine)
	api.Put("/quotes/:id", auth, seller, deps.QuoteHandler.Update)
	api.Put("/quotes/:id/withdraw", auth, seller, deps.QuoteHandler.Withdraw)
	api.Put("/quotes/:id/accept", auth, buyer, deps.QuoteHandler.Accept)

	// Reviews.
	api.Post("/reviews", auth, buyer, deps.ReviewHandler.Create)
	api.Put("/reviews/:id", auth, buyer, deps.ReviewHandler.Update)
	api.Delete("/reviews/:id", auth, buyer, deps.ReviewHandler.Delete)

	// Certifications.
	api.Post("/certifications", auth, seller, deps.CertificationHandler.Create)
	api.Get("/certifications/mine", auth, seller, deps.CertificationHandler.Mine)

	// Content.
	api.Get("/content/items", deps.ContentHandler.ListItems)
	api.Get("/content/items/:slug", deps.ContentHandler.GetItem)
	api.Get("/content/categories", deps.ContentHandler.ListCategories)
	api.Get("/content/tags", deps.ContentHandler.ListTags)

	// Search.
	api.Get("/search", deps.SearchHandler.Search)

	// Saved products.
	api.Get("/saved-products", auth, buyer, deps.SavedProductHandler.List)
	api.Post("/saved-products", auth, buyer, deps.SavedProductHandler.Save)
	api.Delete("/saved-products/:productId", auth, buyer, deps.SavedProductHandler.Unsave)

	// Admin.
	ad := api.Group("/admin", auth, admin)
	ad.Get("/users", deps.AdminHandler.ListUsers)
	ad.Delete("/users/:id", deps.AdminHandler.DeleteUser)
	ad.Put("/sellers/:id/verify", deps.AdminHandler.VerifySeller)
	ad.Get("/orders", deps.AdminHandler.ListOrders)
	ad.Get("/analytics", deps.AdminHandler.Analytics)
	ad.Get("/payments", deps.AdminHandler.Payments)
	ad.Post("/payments/backfill-descriptions", deps.AdminHandler.BackfillPayments)
	ad.Put("/certifications/:id/status", deps.CertificationHandler.SetStatus)
	ad.Post("/content/items", deps.ContentHandler.CreateItem)
	ad.Put("/content/items/:id", deps.ContentHandler.UpdateItem)
	ad.Delete("/content/items/:id", deps.ContentHandler.DeleteItem)
	ad.Post("/content/categories", deps.ContentHandler.CreateCategory)
	ad.Delete("/content/categories/:id", deps.ContentHandler.DeleteCategory)
	ad.Post("/content/tags", deps.ContentHandler.CreateTag)
	ad.Delete("/content/tags/:id", deps.ContentHandler.DeleteTag)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return fail(c, fiber.StatusNotFound, "resource not found")
	})

	return app
}
