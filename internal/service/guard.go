package service

import (
	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/reqctx"
)

// requireRole is the authorization guard every mutating operation runs before
// touching storage. An unauthenticated context fails the same way as a wrong
// role.
func requireRole(ctx reqctx.Context, message string, allowed ...model.Role) error {
	if !ctx.Authenticated() || !ctx.Role.OneOf(allowed...) {
		return apperr.Unauthorized(message)
	}
	return nil
}
