package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/service"
	"go-enterprise-ops/pkg/jwt"
)

// RequireAuth verifies the bearer token, rejects revoked tokens, and binds
// the caller's identity to the request scope before any handler logic runs.
// Invalid, expired and revoked tokens all fail with the same message.
func RequireAuth(blacklist *service.TokenBlacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.Unauthorized("Authorization token missing or malformed")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return apperr.Unauthorized("Authorization token missing or malformed")
		}
		tokenString := parts[1]

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return apperr.Unauthorized("Invalid or expired token")
		}

		if blacklist.IsRevoked(tokenString) {
			return apperr.Unauthorized("Invalid or expired token")
		}

		reqctx.Store(c, reqctx.Context{
			Tenant:     c.Get("X-Tenant-Id"),
			EmployeeID: claims.EmployeeID,
			Role:       claims.Role,
			Status:     claims.Status,
			Token:      tokenString,
		})

		return c.Next()
	}
}
