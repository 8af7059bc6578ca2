package responder

import (
	"net/http"

	"envserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler dispatches requests between the root document and static files.
type Handler struct {
	service *Service
	static  fiber.Handler
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
// static serves every request that is not for the root document, and is the
// fallback when the root document cannot be rendered.
func NewHandler(service *Service, static fiber.Handler, logger *zap.Logger) *Handler {
	return &Handler{service: service, static: static, logger: logger}
}

// NewStatic returns the generic static file handler for root.
// Content types come from file extensions; missing files yield 404 and
// directories without an index yield 403 unless browsing is enabled.
func NewStatic(root http.FileSystem, index string, browse bool) fiber.Handler {
	return filesystem.New(filesystem.Config{
		Root:   root,
		Index:  index,
		Browse: browse,
	})
}

// RegisterRoutes mounts the dispatcher for every path.
// It is mounted with Use so the static handler always sees "/" as its prefix.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.Dispatch)
}

// Dispatch routes one request.
func (h *Handler) Dispatch(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead:
		if h.isRoot(c.Path()) {
			return h.ServeRoot(c)
		}
		return h.static(c)
	case fiber.MethodOptions:
		return c.SendStatus(fiber.StatusNoContent)
	default:
		return fiber.ErrNotImplemented
	}
}

func (h *Handler) isRoot(p string) bool {
	return p == "/" || p == h.service.IndexPath()
}

// ServeRoot responds with the injected root document.
// Any failure is logged and the request is served by the static handler.
func (h *Handler) ServeRoot(c *fiber.Ctx) error {
	body, err := h.service.Render()
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Error serving root document, falling back to static file",
			zap.String("path", utils.CopyString(c.Path())),
			zap.Error(err),
		)
		return h.static(c)
	}

	c.Status(fiber.StatusOK)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.Send(body)
}
