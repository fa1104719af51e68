// Package reqctx carries per-request identity. The auth middleware builds one
// Context per inbound request and stores it in the request's own locals slot;
// handlers read it back and pass it by value into services. Nothing here is a
// package global, so concurrent requests can never observe each other's
// identity.
package reqctx

import (
	"github.com/gofiber/fiber/v2"

	"go-enterprise-ops/internal/model"
)

const localsKey = "request_context"

// Context is the per-request scoped identity. The zero value means
// unauthenticated; services must treat an empty EmployeeID or Role as an
// authorization failure.
type Context struct {
	Tenant     string
	EmployeeID string
	Role       model.Role
	Status     string
	Token      string
}

// Authenticated reports whether the context carries a usable identity.
func (c Context) Authenticated() bool {
	return c.EmployeeID != "" && c.Role != ""
}

// Store binds the context to the current request. Called once by the auth
// middleware before any handler logic runs; torn down with the request.
func Store(c *fiber.Ctx, rc Context) {
	c.Locals(localsKey, rc)
}

// FromFiber returns the request's context, or the zero Context when unset.
func FromFiber(c *fiber.Ctx) Context {
	if rc, ok := c.Locals(localsKey).(Context); ok {
		return rc
	}
	return Context{}
}
