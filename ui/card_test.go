package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/calculator"
	"github.com/kovacs-trading/site/nav"
)

func TestTradingTipCard(t *testing.T) {
	html := renderString(t, TradingTipCard("Use a stop-loss", g.Text("Decide before you enter."), B(g.Text("Always."))))

	assert.Contains(t, html, `<h2 class="text-2xl text-gray-900 uppercase font-semibold">Use a stop-loss</h2>`)
	assert.Contains(t, html, `<p class="text-lg text-gray-900/75 text-center">Decide before you enter.<b>Always.</b></p>`)
	assert.Contains(t, html, `border-yellow-400`)
}

func TestTradingTipCardIsDeterministic(t *testing.T) {
	a := renderString(t, TradingTipCard("Title", g.Text("Body")))
	b := renderString(t, TradingTipCard("Title", g.Text("Body")))
	assert.Equal(t, a, b)
}

func TestTradingTipCardEscapesTitle(t *testing.T) {
	html := renderString(t, TradingTipCard("<script>", g.Text("x")))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestPagesRenderHeaderForTheirPath(t *testing.T) {
	pages := []struct {
		path string
		page func(string, nav.State) g.Node
	}{
		{"/", HomePage},
		{"/getting-started", GettingStartedPage},
		{"/pdf-guides", PDFGuidesPage},
		{"/best-trading-creators", BestTradingCreatorsPage},
		{"/trading-terminology", TradingTerminologyPage},
		{"/position-size-calculator", PositionSizeCalculatorPage},
		{"/best-crypto-exchange", BestCryptoExchangePage},
	}

	for _, p := range pages {
		t.Run(p.path, func(t *testing.T) {
			html := renderString(t, p.page(p.path, nav.State{}))
			assert.Contains(t, html, `<!doctype html>`)
			assert.Contains(t, html, `id="site-header"`)
			assert.Equal(t, 1, countActive(html), "exactly one top-level entry is active on %s", p.path)
		})
	}
}

func TestGettingStartedUsesTipCards(t *testing.T) {
	html := renderString(t, GettingStartedPage("/getting-started", nav.State{}))
	for _, tip := range gettingStartedTips {
		assert.Contains(t, html, ">"+tip.title+"</h2>")
	}
}

func TestPositionSizeResult(t *testing.T) {
	html := renderString(t, PositionSizeResult(calculator.Result{RiskAmount: 100, Units: 50, PositionValue: 2500, Long: true}))
	assert.Contains(t, html, "<dd>Long</dd>")
	assert.Contains(t, html, "<dd>100.00</dd>")
	assert.Contains(t, html, "<dd>50.0000</dd>")
	assert.Contains(t, html, "<dd>2500.00</dd>")
}

func TestErrorPage(t *testing.T) {
	html := renderString(t, ErrorPage(404, "Not Found"))
	assert.Contains(t, html, "Error 404")
	assert.Contains(t, html, "<p>Not Found</p>")
	assert.Equal(t, 0, countActive(html))
}
