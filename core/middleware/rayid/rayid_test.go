package rayid_test

import (
	"net/http/httptest"
	"testing"

	"finaid-preflight/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendString("ok")
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
		assert.Equal(t, resp.Header.Get(rayid.HeaderName), seen)
	})

	t.Run("Preserved", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "caller-supplied")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "caller-supplied", resp.Header.Get(rayid.HeaderName))
	})
}
