package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/service"
)

type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Apply records one ledger mutation against a product's stock row
// POST /api/v1/products/:productId/stock
func (h *StockHandler) Apply(c *fiber.Ctx) error {
	var req service.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	result, err := h.stockService.Apply(c.Params("productId"), &req, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Stock updated successfully!", result)
}

// GetByProduct returns the stock rows and derived total for a product
// GET /api/v1/products/:productId/stock
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	result, err := h.stockService.GetByProduct(c.Params("productId"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Stock fetched successfully!", result)
}

// ApplyBatch applies mutations across products with per-product pass/fail
// POST /api/v1/stocks/batch
func (h *StockHandler) ApplyBatch(c *fiber.Ctx) error {
	var batch map[string][]service.ApplyRequest
	if err := c.BodyParser(&batch); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	result, err := h.stockService.ApplyBatch(batch, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Stock batch processed", result)
}
