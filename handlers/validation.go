package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kovacs-trading/site/ui"
)

// ValidateRequired validates that a required form field is not empty
func ValidateRequired(c *fiber.Ctx, fieldName, displayName string) (string, error) {
	value := strings.TrimSpace(c.FormValue(fieldName))
	if value == "" {
		return "", fmt.Errorf("%s is required", displayName)
	}
	return value, nil
}

// ParseFormFloat parses a required form value as a number
func ParseFormFloat(c *fiber.Ctx, fieldName, displayName string) (float64, error) {
	value, err := ValidateRequired(c, fieldName, displayName)
	if err != nil {
		return 0, err
	}
	return parseFloat(value, displayName)
}

func parseFloat(value, displayName string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", displayName)
	}
	return f, nil
}

// ValidationErrorResponse returns a validation error response
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return render(c, ui.ValidationError(message))
}
