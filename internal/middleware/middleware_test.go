package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-passport/internal/domain"
	"career-passport/internal/dto"
	"career-passport/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/", handler)
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"content unavailable", domain.NewContentUnavailableError(domain.ResourceCareers, errors.New("timeout")), http.StatusBadGateway, "CONTENT_UNAVAILABLE"},
		{"unsupported resource", domain.NewUnsupportedResourceError("secrets.json"), http.StatusNotFound, "UNSUPPORTED_RESOURCE"},
		{"validation", domain.NewValidationError("validation failed", map[string]string{"email": "is required"}), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"storage", domain.NewStorageError("disk", nil), http.StatusInternalServerError, "STORAGE_ERROR"},
		{"fiber", fiber.NewError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "HTTP_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error {
		return domain.NewValidationError("validation failed", map[string]string{"email": "is required"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"email": "is required"}, decodeError(t, resp).Details)
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	var seen string
	app := newApp(func(c *fiber.Ctx) error {
		seen = middleware.RequestIDFrom(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(middleware.RequestIDHeader)
	assert.Equal(t, seen, id)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	app := newApp(func(c *fiber.Ctx) error { return c.SendString("ok") })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", resp.Header.Get(middleware.RequestIDHeader))
}
