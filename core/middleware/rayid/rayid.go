// Package rayid assigns a unique request id to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Ray-Id"

// LocalsKey is the fiber locals key the request id is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that generates a RayID per request, stores it in
// the request locals and echoes it in the response headers. An id supplied
// by the caller in the request header is preserved.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
