package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/logging"
)

func TestAuditLogsRequestWithIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")
	tokens := newTestTokens(t, testSecret)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Use(RequestID(), Audit(logger))
	app.Get("/tasks", Authenticate(tokens, logger), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/tasks", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issue(t, tokens, "u1"))
	req.Header.Set(requestIDHeader, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-1", resp.Header.Get(requestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.EqualValues(t, fiber.StatusOK, entry["status"])
}

func TestAuditRecordsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")
	tokens := newTestTokens(t, testSecret)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Use(Audit(logger))
	app.Get("/tasks", Authenticate(tokens, logger), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tasks", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, fiber.StatusForbidden, entry["status"])
	assert.NotContains(t, entry, "user_id")
}

func TestRequestIDGenerated(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
}
