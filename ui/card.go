package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TradingTipCard renders a titled card with the given body content.
func TradingTipCard(title string, children ...g.Node) g.Node {
	return Div(
		Class("bg-white rounded-lg shadow col-span-1"),
		Div(
			Class("flex flex-col items-center"),
			Div(
				Class("pt-8 px-4"),
				H2(Class("text-2xl text-gray-900 uppercase font-semibold"), g.Text(title)),
			),
			Span(Class("w-[75px] my-4 border-b-2 border-yellow-400")),
			Div(
				Class("w-full p-6 pt-0"),
				P(Class("text-lg text-gray-900/75 text-center"), g.Group(children)),
			),
		),
	)
}
