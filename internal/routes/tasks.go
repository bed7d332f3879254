package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/task"
)

// RegisterTaskRoutes wires task CRUD under /tasks. guard runs ahead of every
// task handler on the matched route only, so sibling paths such as /tasksx
// fall through to the usual 404.
func RegisterTaskRoutes(r fiber.Router, h *task.Handler, guard ...fiber.Handler) {
	group := r.Group("/tasks")
	with := func(next fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, guard...), next)
	}
	group.Get("/", with(h.List)...)
	group.Post("/", with(h.Create)...)
	group.Get("/:id", with(h.Get)...)
	group.Put("/:id", with(h.Update)...)
	group.Delete("/:id", with(h.Delete)...)
}
