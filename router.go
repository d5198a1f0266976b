package main

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func RegisterRoutes(app *fiber.App, store *Store, logger *Logger) {
	// PWA page routes
	pages := []struct {
		path     string
		template string
	}{
		{"/", "index"},
		{"/journal", "journal"},
		{"/about", "about"},
		{"/projects", "projects"},
		{"/offline", "offline"},
	}
	for _, page := range pages {
		tmpl := page.template
		app.Get(page.path, func(c *fiber.Ctx) error {
			return c.Render(tmpl, fiber.Map{})
		})
	}

	// Service worker and manifest have to live at the root scope.
	app.Get("/sw.js", func(c *fiber.Ctx) error {
		c.Type("js")
		return c.Send(serviceWorkerJS)
	})
	app.Get("/manifest.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.Send(manifestJSON)
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFS),
		PathPrefix: "static",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return handleHealth(c, logger)
	})

	api := app.Group("/api")
	api.Get("/reflections", func(c *fiber.Ctx) error {
		return handleListReflections(c, store, logger)
	})
	api.Post("/reflections", func(c *fiber.Ctx) error {
		return handleCreateReflection(c, store, logger)
	})
	api.Delete("/reflections/:position<int>", func(c *fiber.Ctx) error {
		return handleDeleteReflection(c, store, logger)
	})
}
