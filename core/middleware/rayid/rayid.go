package rayid

import (
	"envserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// Header is the response header carrying the ray id.
const Header = "X-Ray-ID"

// New returns a middleware that tags each request with a ray id.
// An incoming X-Ray-ID header is reused so proxies can propagate their own id.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := utils.CopyString(c.Get(Header))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
