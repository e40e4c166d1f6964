package local

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kovacs-trading/site/nav"
)

func GetNavState(c *fiber.Ctx) nav.State {
	state, _ := c.Locals("navState").(nav.State)
	return state
}

func SetNavState(c *fiber.Ctx, state nav.State) {
	c.Locals("navState", state)
}
