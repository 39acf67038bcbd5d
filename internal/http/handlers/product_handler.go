package handlers

import (
	"strconv"

	"tradeyard/internal/domain"
	applog "tradeyard/internal/log"
	"tradeyard/internal/repos"
	"tradeyard/internal/services"
	"tradeyard/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// notFoundProduct is the legacy not-found shape product clients match on.
// Kept deliberately distinct from the uniform error envelope.
func notFoundProduct(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false, "message": "Product not found", "timestamp": now(),
	})
}

// GET /api/products (anonymous)
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 50)

	minPrice, _ := strconv.ParseFloat(c.Query("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("maxPrice"), 64)
	f := repos.ProductFilter{
		Q:          c.Query("q"),
		CategoryID: c.Query("categoryId"),
		SellerID:   c.Query("sellerId"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}

	products, total, err := h.Catalog.Search(f, page, pageSize)
	if err != nil {
		return failErr(c, "products.list.fail", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return okList(c, "products", products, NewPagination(page, pageSize, total))
}

// GET /api/products/:id (anonymous). A non-UUID id is 404 here, not 400.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return notFoundProduct(c)
	}
	p, err := h.Catalog.Get(id)
	if err != nil || !p.Active {
		return notFoundProduct(c)
	}
	return ok(c, "product", p)
}

// GET /api/products/:id/availability (anonymous)
func (h *ProductHandler) Availability(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return notFoundProduct(c)
	}
	av, err := h.Catalog.Availability(id)
	if err != nil {
		return notFoundProduct(c)
	}
	return ok(c, "availability", av)
}

// GET /api/products/mine (SELLER)
func (h *ProductHandler) Mine(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"), 20, 50)
	products, total, err := h.Catalog.ListMine(callerID(c), page, pageSize)
	if err != nil {
		return failErr(c, "products.mine.fail", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return okList(c, "my products", products, NewPagination(page, pageSize, total))
}

type productRequest struct {
	CategoryID  string  `json:"categoryId" validate:"required"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	Stock       int     `json:"stock" validate:"gte=0"`
	MinOrderQty int     `json:"minOrderQty" validate:"omitempty,gte=1"`
}

// POST /api/products (SELLER)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Catalog.Create(callerID(c), domain.Product{
		CategoryID: req.CategoryID, Name: req.Name, Description: req.Description,
		Price: req.Price, Currency: req.Currency, Stock: req.Stock, MinOrderQty: req.MinOrderQty,
	})
	if err != nil {
		return failErr(c, "products.create.fail", err)
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return created(c, "product created", p)
}

// PUT /api/products/:id (SELLER, owner)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Catalog.Update(callerID(c), id, domain.Product{
		CategoryID: req.CategoryID, Name: req.Name, Description: req.Description,
		Price: req.Price, Currency: req.Currency, Stock: req.Stock, MinOrderQty: req.MinOrderQty,
	})
	if err != nil {
		return failErr(c, "products.update.fail", err)
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": id})
	return ok(c, "product updated", p)
}

// DELETE /api/products/:id (SELLER, owner; soft delete)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validate.UUID(id) {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Catalog.Delete(callerID(c), id); err != nil {
		return failErr(c, "products.delete.fail", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return ok(c, "product removed", nil)
}

// GET /api/categories (anonymous)
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return failErr(c, "categories.list.fail", err)
	}
	return ok(c, "categories", cats)
}
