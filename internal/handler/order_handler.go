package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create persists an order header and its lines
// POST /api/v1/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	order, err := h.orderService.Create(&req, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, "Order created successfully!", order)
}

// GetByOrderNumber fetches one order with its dealer and lines
// GET /api/v1/orders/:orderNumber
func (h *OrderHandler) GetByOrderNumber(c *fiber.Ctx) error {
	order, err := h.orderService.GetByOrderNumber(c.Params("orderNumber"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order fetched successfully!", order)
}

// List returns all orders with dealers and lines batched in
// GET /api/v1/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orderService.List()
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order list fetched successfully!", orders)
}
