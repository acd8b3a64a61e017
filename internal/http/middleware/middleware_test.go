package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, ridHeader, string(body))
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, existingID, string(body))
	})

	t.Run("should replace unusable request id", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", 129)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, err := app.Test(req)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			_, err = uuid.Parse(got)
			assert.NoError(t, err)
		}
	})
}

func TestRequestIDFrom(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(c *fiber.Ctx) error {
		return c.SendString("[" + RequestIDFrom(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/bare", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(body))
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success logs info", status: fiber.StatusAccepted, wantLevel: "info"},
		{name: "client error logs warn", status: fiber.StatusNotFound, wantLevel: "warn"},
		{name: "server error logs error", status: fiber.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(RequestID())
			app.Use(Logger(zerolog.New(&buf).With().Timestamp().Logger()))

			app.Get("/library/documents", func(c *fiber.Ctx) error {
				return c.SendStatus(tt.status)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/library/documents?x=1", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var logData map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

			assert.Equal(t, resp.Header.Get(RequestIDHeader), logData["request_id"])
			assert.Equal(t, tt.wantLevel, logData["level"])
			assert.Equal(t, "http", logData["component"])
			assert.Equal(t, "http_request", logData["event"])
			assert.Equal(t, "GET", logData["method"])
			assert.Equal(t, "/library/documents", logData["path"])
			assert.Equal(t, float64(tt.status), logData["status"])
			assert.Contains(t, logData, "latency_ms")
			assert.NotEmpty(t, logData["time"])
		})
	}
}
