package middleware

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	var fromContext string
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		fromContext = RequestIDFromContext(c.UserContext())
		return c.SendString(GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, id, fromContext)
}

func TestRequestIDKeepsInboundValue(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "ui-1234")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "ui-1234", resp.Header.Get(RequestIDHeader))
}

func TestRequestIDReplacesImplausibleValue(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for name, inbound := range map[string]string{
		"too long":   strings.Repeat("a", 65),
		"whitespace": "abc def",
		"markup":     "<script>alert(1)</script>",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(RequestIDHeader, inbound)
			resp, err := app.Test(req)
			require.NoError(t, err)

			id := resp.Header.Get(RequestIDHeader)
			require.NotEqual(t, inbound, id)
			_, err = uuid.Parse(id)
			require.NoError(t, err)
		})
	}
}

func TestRequestIDAcceptsMaxLength(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	inbound := strings.Repeat("a", 64)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, inbound)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, inbound, resp.Header.Get(RequestIDHeader))
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "job-7")
	require.Equal(t, "job-7", RequestIDFromContext(ctx))
	require.Empty(t, RequestIDFromContext(context.Background()))
}
