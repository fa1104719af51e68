package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/service"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Signup creates a new employee account (administrators only)
// POST /api/v1/employees
func (h *EmployeeHandler) Signup(c *fiber.Ctx) error {
	var req service.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	employee, err := h.employeeService.Create(&req, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, "Account created successfully! Welcome aboard!", employee)
}

// GetProfile fetches one active employee
// GET /api/v1/employees/:employeeId
func (h *EmployeeHandler) GetProfile(c *fiber.Ctx) error {
	employee, err := h.employeeService.GetByEmployeeID(c.Params("employeeId"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Employee profile retrieved successfully", employee)
}

// UpdateProfile applies a partial update to an employee
// PUT /api/v1/employees/:employeeId
func (h *EmployeeHandler) UpdateProfile(c *fiber.Ctx) error {
	var req service.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	employee, err := h.employeeService.Update(c.Params("employeeId"), &req, reqctx.FromFiber(c))
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Profile updated successfully!", employee)
}

// List returns active employees, newest first, offset-paginated
// GET /api/v1/employees?page=&limit=
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := h.employeeService.ListActive(page, limit)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Employees retrieved successfully", result)
}
