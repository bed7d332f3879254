package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/auth"
)

const (
	msgMissingToken = "No token provided"
	msgInvalidToken = "Invalid or expired token"
)

var errUnsupportedScheme = errors.New("unsupported authorization scheme")

// Authenticate guards protected routes. A request without a bearer token is
// rejected with 403 before any verification happens; a token that fails
// verification is rejected with 401. On success the claims are attached to
// the request and the next handler runs exactly once.
func Authenticate(tokens *auth.TokenService, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if errors.Is(err, auth.ErrMissingToken) {
			return fiber.NewError(http.StatusForbidden, msgMissingToken)
		}
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, msgInvalidToken)
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			logger.Debug("token rejected", slog.String("path", c.Path()), slog.Any("error", err))
			return fiber.NewError(http.StatusUnauthorized, msgInvalidToken)
		}

		c.Locals(auth.LocalsKey, claims)
		c.SetUserContext(auth.WithClaims(c.UserContext(), claims))
		return c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The token is the text between the first and second single
// space; anything after it is ignored. An empty token segment, as in
// "Bearer  x" or "Bearer\tx", counts as no token.
func bearerToken(header string) (string, error) {
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok {
		return "", auth.ErrMissingToken
	}
	token, _, _ := strings.Cut(rest, " ")
	if token == "" {
		return "", auth.ErrMissingToken
	}
	if !strings.EqualFold(scheme, "bearer") {
		return "", errUnsupportedScheme
	}
	return token, nil
}
