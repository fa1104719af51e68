package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignInRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Password      string `json:"password"`
}

// SignIn handles employee authentication
// POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}

	result, err := h.authService.SignIn(req.EmployeeEmail, req.Password)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Login successful! Welcome back!", result)
}

// SignOut revokes the caller's bearer token for its remaining lifetime
// POST /api/v1/auth/signout
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return apperr.Unauthorized("No token provided or format is invalid")
	}

	if err := h.authService.SignOut(parts[1]); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, "Successfully logged out", nil)
}
