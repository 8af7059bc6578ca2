package cors

import "github.com/gofiber/fiber/v2"

const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "*"
)

// New returns a middleware that sets the permissive CORS header triple on
// every response, before the rest of the chain runs. Error responses written
// by the app's error handler keep them.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, AllowHeaders)
		return c.Next()
	}
}
