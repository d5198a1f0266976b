package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

var openapiDoc *openapi3.T

// loadAPISpec parses and validates the embedded OpenAPI document.
func loadAPISpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(apiSpec)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

// newApp assembles the Fiber application: template engine, error handlers,
// and all page, static, and API routes.
func newApp(store *Store, logger *Logger) (*fiber.App, error) {
	if openapiDoc == nil {
		doc, err := loadAPISpec()
		if err != nil {
			return nil, err
		}
		openapiDoc = doc
	}

	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(logger),
	})

	RegisterRoutes(app, store, logger)
	return app, nil
}

// newErrorHandler maps errors that escape the handlers: 404s render the
// offline page so PWA navigation still lands somewhere useful, everything
// else becomes a generic 500 with the real error kept in the logs.
func newErrorHandler(logger *Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).Render("offline", fiber.Map{})
		}
		if code < fiber.StatusInternalServerError {
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		}

		logger.Error(ComponentHTTPServer, err.Error())
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func startServer(dataFile string, port int) {
	if err := os.MkdirAll(filepath.Dir(dataFile), 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	logger := NewLogger()
	store := NewStore(dataFile, logger)

	app, err := newApp(store, logger)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	log.Printf("🚀 Journal server running at http://localhost:%d", port)
	log.Printf("📓 Reflections file: %s", dataFile)

	log.Fatal(app.Listen(":" + strconv.Itoa(port)))
}
