package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/nav"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-3xl mx-auto"),
		g.Group(content),
	)
}

func cardGrid(children ...g.Node) g.Node {
	return Div(
		Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
		g.Group(children),
	)
}

func section(title string, content ...g.Node) g.Node {
	return Div(
		Class("mb-8"),
		H2(Class("text-2xl font-semibold mb-4 text-gray-900"), g.Text(title)),
		g.Group(content),
	)
}

// ---- Form Components ----

func formGroup(label, id string, input g.Node) g.Node {
	return Div(
		Class("mb-4"),
		Label(For(id), Class("block mb-1 font-semibold text-gray-700"), g.Text(label)),
		input,
	)
}

func numberInput(id, placeholder string) g.Node {
	return Input(
		Type("number"),
		ID(id),
		Name(id),
		Step("any"),
		Placeholder(placeholder),
		Class("w-full p-2 border rounded"),
		Required(),
	)
}

func resultContainer() g.Node {
	return Div(
		ID("result"),
		Class("mt-4"),
	)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"", // no active link on error pages
		nav.State{},
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
			A(Href(nav.Home.Href), Class("text-blue-600 hover:underline"), g.Text("Back to home")),
		},
	)
}
