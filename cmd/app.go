package cmd

import (
	"net/http"

	"envserve/core/config"
	"envserve/core/loader"
	"envserve/core/logger"
	"envserve/core/middleware/cors"
	"envserve/core/middleware/rayid"
	"envserve/feature/responder"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func loaderFor(cfg *config.Config, root http.FileSystem, values responder.Values, logg *zap.Logger) *loader.Manager {
	mgr := loader.NewManager()
	mgr.Register(responder.NewFeature(root, cfg.Server.Index, cfg.Server.Browse, values, logg))
	return mgr
}

// newApp builds the Fiber app with the global middleware chain and every
// enabled feature.
func newApp(logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))
	app.Use(cors.New())

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
