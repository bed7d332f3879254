package identity

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes account registration.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user onboarding.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	user, err := h.service.Register(c.UserContext(), Registration{Username: req.Username, Email: req.Email, Password: req.Password})
	switch {
	case errors.Is(err, ErrInvalidInput):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserExists):
		return fiber.NewError(http.StatusConflict, "User already exists")
	case err != nil:
		return err
	}
	h.logger.Info("identity.register completed",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}
