package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/kovacs-trading/site/local"
	"github.com/kovacs-trading/site/nav"
	"github.com/kovacs-trading/site/ui"
)

type pageFunc func(path string, state nav.State) g.Node

func page(p pageFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, p(c.Route().Path, local.GetNavState(c)))
	}
}

var (
	HandleHome                   = page(ui.HomePage)
	HandleGettingStarted         = page(ui.GettingStartedPage)
	HandlePDFGuides              = page(ui.PDFGuidesPage)
	HandleBestTradingCreators    = page(ui.BestTradingCreatorsPage)
	HandleTradingTerminology     = page(ui.TradingTerminologyPage)
	HandlePositionSizeCalculator = page(ui.PositionSizeCalculatorPage)
	HandleBestCryptoExchange     = page(ui.BestCryptoExchangePage)
)
