package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/identity"
)

// Handler exposes the login endpoint.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler builds the login HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Login validates credentials and returns an identity token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password are required")
	}

	token, user, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		return fiber.NewError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return err
	}

	h.logger.Info("auth.login completed", slog.String("user_id", user.ID))
	return c.Status(http.StatusOK).JSON(loginResponse{
		Token:     token,
		ExpiresIn: int64(h.svc.tokens.TTL().Seconds()),
	})
}
