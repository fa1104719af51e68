package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create adds a catalog entry, optionally seeding opening stock
// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	product, err := h.productService.Create(&req, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, "Product created successfully!", product)
}

// Update applies a partial update
// PUT /api/v1/products/:productId
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	product, err := h.productService.Update(c.Params("productId"), &req, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Product updated successfully!", product)
}

// GetByProductID fetches one product
// GET /api/v1/products/:productId
func (h *ProductHandler) GetByProductID(c *fiber.Ctx) error {
	product, err := h.productService.GetByProductID(c.Params("productId"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product fetched successfully!", product)
}

// List returns the catalog, newest first
// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productService.List()
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product list fetched successfully!", products)
}
