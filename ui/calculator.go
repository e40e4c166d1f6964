package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/calculator"
	"github.com/kovacs-trading/site/nav"
)

func PositionSizeCalculatorPage(path string, state nav.State) g.Node {
	return Page(
		"Position Size Calculator",
		path,
		state,
		[]g.Node{
			pageHeader("Position Size Calculator"),
			contentContainer(
				Form(
					ID("calculatorForm"),
					Class("bg-white rounded-lg shadow p-6"),
					hx.Post("/api/position-size"),
					hx.Target("#result"),
					formGroup("Account balance", "balance", numberInput("balance", "10000")),
					formGroup("Risk per trade (%)", "risk", numberInput("risk", "1")),
					formGroup("Entry price", "entry", numberInput("entry", "50")),
					formGroup("Stop-loss price", "stop", numberInput("stop", "48")),
					Button(
						Type("submit"),
						Class("px-4 py-2 rounded inline-block bg-yellow-400 text-gray-900 font-semibold hover:bg-yellow-300"),
						g.Text("Calculate"),
					),
				),
				resultContainer(),
			),
		},
	)
}

// PositionSizeResult is the fragment swapped into #result.
func PositionSizeResult(r calculator.Result) g.Node {
	direction := "Short"
	if r.Long {
		direction = "Long"
	}
	return Div(
		Class("bg-green-100 border-green-500 text-green-900 px-4 py-3 rounded"),
		Dl(
			Class("grid grid-cols-2 gap-2"),
			resultRow("Direction", direction),
			resultRow("Amount at risk", fmt.Sprintf("%.2f", r.RiskAmount)),
			resultRow("Position size (units)", fmt.Sprintf("%.4f", r.Units)),
			resultRow("Position value", fmt.Sprintf("%.2f", r.PositionValue)),
		),
	)
}

func resultRow(name, value string) g.Node {
	return g.Group([]g.Node{
		Dt(Class("font-semibold"), g.Text(name)),
		Dd(g.Text(value)),
	})
}
