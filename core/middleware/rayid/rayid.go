// Package rayid assigns a unique ray ID to every incoming request.
//
// The ID is stored in the request locals under "ray_id" and echoed back in
// the X-Ray-ID response header so clients and logs can be correlated.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-ID"

// New creates the ray ID middleware. An inbound X-Ray-ID header is honored so
// upstream proxies can propagate their own trace IDs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
