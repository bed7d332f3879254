package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the fiber locals key holding the verified *Claims.
const LocalsKey = "auth.claims"

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying the verified claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext extracts claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// ClaimsFrom returns the claims the auth gate attached to the request.
func ClaimsFrom(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(LocalsKey).(*Claims)
	return claims, ok && claims != nil
}
