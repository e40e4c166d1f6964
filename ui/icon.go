package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/config"
)

// ---- Icon Components ----

func iconSrc(name string) string {
	return config.IconDir + "/" + name + ".svg"
}

// icon renders a decorative icon image
func icon(name string, classes ...string) g.Node {
	class := "h-5 w-5"
	for _, c := range classes {
		class += " " + c
	}

	return Img(
		Src(iconSrc(name)),
		Alt(""),
		Aria("hidden", "true"),
		Class(class),
	)
}

// chevron is the dropdown indicator; it points up while its panel is open
func chevron(open bool) g.Node {
	if open {
		return icon("chevron-down", "flex-none", "rotate-180")
	}
	return icon("chevron-down", "flex-none")
}

func logo() g.Node {
	return Img(
		Src(config.LogoURL),
		Width(strconv.Itoa(config.LogoWidth)),
		Height(strconv.Itoa(config.LogoHeight)),
		Alt(config.SiteName),
	)
}
