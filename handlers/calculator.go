package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kovacs-trading/site/calculator"
	"github.com/kovacs-trading/site/ui"
)

// HandlePositionSize answers the calculator form with a result fragment.
// Invalid input is reported inline; htmx only swaps 2xx responses.
func HandlePositionSize(c *fiber.Ctx) error {
	var in calculator.Input
	fields := []struct {
		name    string
		display string
		dst     *float64
	}{
		{"balance", "Account balance", &in.Balance},
		{"risk", "Risk per trade", &in.RiskPercent},
		{"entry", "Entry price", &in.Entry},
		{"stop", "Stop-loss price", &in.StopLoss},
	}
	for _, f := range fields {
		v, err := ParseFormFloat(c, f.name, f.display)
		if err != nil {
			return ValidationErrorResponse(c, err.Error())
		}
		*f.dst = v
	}

	result, err := calculator.PositionSize(in)
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	return render(c, ui.PositionSizeResult(result))
}
