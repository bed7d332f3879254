package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/auth"
	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/identity"
)

// RegisterAuthRoutes wires registration and login.
func RegisterAuthRoutes(r fiber.Router, ids *identity.Handler, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	group.Post("/register", ids.Register)
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
}
