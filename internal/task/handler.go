package task

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/auth"
)

// Handler exposes task HTTP endpoints. Every route expects the auth gate to
// have attached the caller's claims.
type Handler struct {
	service *Service
}

// NewHandler builds a task HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	DueDate     *string `json:"dueDate"`
}

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *Status `json:"status"`
	DueDate     *string `json:"dueDate"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toResponse(t Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// List returns the caller's tasks.
func (h *Handler) List(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	tasks, err := h.service.List(c.UserContext(), owner, Status(c.Query("status")))
	if err != nil {
		return mapError(err)
	}
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toResponse(t))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// Create adds a task for the caller.
func (h *Handler) Create(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}
	task, err := h.service.Create(c.UserContext(), owner, CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     due,
	})
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(toResponse(task))
}

// Get returns one of the caller's tasks.
func (h *Handler) Get(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	task, err := h.service.Get(c.UserContext(), owner, c.Params("id"))
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(task))
}

// Update applies a partial update to one of the caller's tasks. An empty
// dueDate string clears the due date; an absent or null one keeps it.
func (h *Handler) Update(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}
	task, err := h.service.Update(c.UserContext(), owner, c.Params("id"), UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		DueDate:      due,
		ClearDueDate: req.DueDate != nil && strings.TrimSpace(*req.DueDate) == "",
	})
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(task))
}

// Delete removes one of the caller's tasks.
func (h *Handler) Delete(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), owner, c.Params("id")); err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Task deleted successfully"})
}

func ownerID(c *fiber.Ctx) (string, error) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok || claims.UserID() == "" {
		return "", fiber.NewError(http.StatusUnauthorized, "Invalid or expired token")
	}
	return claims.UserID(), nil
}

// parseDueDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fiber.NewError(http.StatusBadRequest, "dueDate must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "Task not found")
	case errors.Is(err, ErrInvalidInput):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
