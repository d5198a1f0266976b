package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// dateLayout is the journal's display date format, e.g. "Sat Aug 23 2026".
const dateLayout = "Mon Jan 02 2006"

const anonymousName = "Anonymous"

// validationError emits the validator log lines and returns the error response.
func validationError(c *fiber.Ctx, logger *Logger, statusCode int, errMsg string) error {
	logger.Warning(ComponentValidator, "Request did not pass the validation rules")
	logger.Error(ComponentValidator, errMsg)
	logger.RespondWith(statusCode)
	return c.Status(statusCode).JSON(fiber.Map{"error": errMsg})
}

// bodyValidationError logs every violation on its own line, then responds.
func bodyValidationError(c *fiber.Ctx, logger *Logger, statusCode int, violations []string) error {
	logger.Warning(ComponentValidator, "Request did not pass the validation rules")
	for _, v := range violations {
		logger.Error(ComponentValidator, v)
	}
	logger.RespondWith(statusCode)
	return c.Status(statusCode).JSON(fiber.Map{"error": strings.Join(violations, "; ")})
}

// storageError hides a store failure behind a generic 500; the detail only
// goes to the logs.
func storageError(c *fiber.Ctx, logger *Logger, err error) error {
	logger.Error(ComponentStore, err.Error())
	logger.RespondWith(fiber.StatusInternalServerError)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func handleHealth(c *fiber.Ctx, logger *Logger) error {
	logger.RequestReceived(fiber.MethodGet, c.Path())
	logger.RespondWith(fiber.StatusOK)
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func handleListReflections(c *fiber.Ctx, store *Store, logger *Logger) error {
	logger.RequestReceived(fiber.MethodGet, c.Path())

	reflections := store.Load()
	logger.Success(ComponentHTTPServer, fmt.Sprintf("Found %d reflections. Responding with collection", len(reflections)))
	logger.RespondWith(fiber.StatusOK)
	return c.JSON(reflections)
}

func handleCreateReflection(c *fiber.Ctx, store *Store, logger *Logger) error {
	logger.RequestReceived(fiber.MethodPost, c.Path())

	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil || len(body) == 0 {
		return validationError(c, logger, fiber.StatusBadRequest, "No data provided")
	}

	if violations := validateAgainstSchema(body, createReflectionSchema()); len(violations) > 0 {
		return bodyValidationError(c, logger, fiber.StatusBadRequest, violations)
	}

	name := strings.TrimSpace(stringField(body, "name"))
	text := strings.TrimSpace(stringField(body, "reflection"))
	if text == "" {
		return validationError(c, logger, fiber.StatusBadRequest, "Reflection content cannot be empty")
	}
	if name == "" {
		name = anonymousName
	}

	logger.Success(ComponentValidator, "Request passed all validation rules")

	entry := Reflection{
		Name:       name,
		Date:       time.Now().Format(dateLayout),
		Reflection: text,
	}
	if err := store.Append(entry); err != nil {
		return storageError(c, logger, err)
	}

	logger.RespondWith(fiber.StatusCreated)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func handleDeleteReflection(c *fiber.Ctx, store *Store, logger *Logger) error {
	logger.RequestReceived(fiber.MethodDelete, c.Path())

	position, err := strconv.Atoi(c.Params("position"))
	if err != nil {
		return fiber.ErrNotFound
	}

	removed, err := store.DeleteAt(position)
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			logger.Warning(ComponentValidator, fmt.Sprintf("No reflection at position %d", position))
			logger.RespondWith(fiber.StatusNotFound)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Index out of range"})
		}
		return storageError(c, logger, err)
	}

	logger.RespondWith(fiber.StatusOK)
	return c.JSON(removed)
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func stringField(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

// createReflectionSchema returns the request body schema of the create
// operation from the OpenAPI document.
func createReflectionSchema() *openapi3.Schema {
	if openapiDoc == nil {
		return nil
	}
	item := openapiDoc.Paths.Find("/api/reflections")
	if item == nil || item.Post == nil || item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
		return nil
	}
	media := item.Post.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

// validateAgainstSchema checks the body against the schema's required fields
// and basic type constraints. Returns all violation messages (empty = valid).
func validateAgainstSchema(body map[string]any, schema *openapi3.Schema) []string {
	if schema == nil {
		return nil
	}

	var violations []string

	// Check required fields — collect ALL missing, don't stop at first
	for _, field := range schema.Required {
		if _, ok := body[field]; !ok {
			violations = append(violations,
				fmt.Sprintf("request body must have required property '%s'", field))
		}
	}

	// Check property types for supplied values
	for name, ref := range schema.Properties {
		val, exists := body[name]
		if !exists || ref == nil || ref.Value == nil {
			continue
		}
		if err := checkType(name, val, ref.Value); err != nil {
			violations = append(violations, err.Error())
		}
	}

	return violations
}

// checkType validates a single value against an OpenAPI property schema.
func checkType(name string, val any, prop *openapi3.Schema) error {
	if val == nil {
		if !prop.Nullable {
			return fmt.Errorf("property %q must not be null", name)
		}
		return nil
	}

	switch prop.Type {
	case "string":
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("property %q must be a string", name)
		}
		if prop.MinLength > 0 && uint64(len(s)) < prop.MinLength {
			return fmt.Errorf("property %q must be at least %d characters", name, prop.MinLength)
		}
		if prop.MaxLength != nil && uint64(len(s)) > *prop.MaxLength {
			return fmt.Errorf("property %q must be at most %d characters", name, *prop.MaxLength)
		}
	case "integer", "number":
		if _, ok := val.(float64); !ok {
			return fmt.Errorf("property %q must be a number", name)
		}
	case "boolean":
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("property %q must be a boolean", name)
		}
	}
	return nil
}
