package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/kovacs-trading/site/nav"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

// everythingOpen shows every panel so that all links are rendered
func everythingOpen() nav.State {
	ids := []nav.GroupID{nav.GroupLearnToTrade, nav.GroupUtilities}
	return nav.Restore(true, ids, ids)
}

func countActive(html string) int {
	return strings.Count(html, ` text-gray-50"`) + strings.Count(html, ` bg-gray-50"`)
}

func TestUnknownPathRendersAllLinksInactive(t *testing.T) {
	for _, path := range []string{"/unknown", "", "/pdf-guides/extra", "/getting-started/"} {
		t.Run(path, func(t *testing.T) {
			html := renderString(t, SiteHeader(path, everythingOpen()))
			assert.Equal(t, 0, countActive(html))
		})
	}
}

func TestHomeIsActiveAtRoot(t *testing.T) {
	html := renderString(t, SiteHeader("/", everythingOpen()))

	assert.Contains(t, html, `<a href="/" class="`+desktopLinkClass(true)+`">HOME</a>`)
	assert.Contains(t, html, `<a href="/" class="`+mobileLinkClass(true)+`">HOME</a>`)
	// desktop and mobile HOME only
	assert.Equal(t, 2, countActive(html))
}

func TestGroupActiveStyling(t *testing.T) {
	tests := []struct {
		path      string
		learn     bool
		utilities bool
	}{
		{path: "/pdf-guides", learn: true},
		{path: "/getting-started", learn: true},
		{path: "/position-size-calculator", utilities: true},
		{path: "/best-crypto-exchange"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			html := renderString(t, SiteHeader(tt.path, nav.State{}))

			learnButton := `class="` + dropdownButtonClass(tt.learn) + `" aria-expanded="false" hx-post="/nav/dropdown/learn-to-trade/toggle"`
			utilitiesButton := `class="` + dropdownButtonClass(tt.utilities) + `" aria-expanded="false" hx-post="/nav/dropdown/utilities/toggle"`
			assert.Contains(t, html, learnButton)
			assert.Contains(t, html, utilitiesButton)
		})
	}
}

func TestActiveDropdownItem(t *testing.T) {
	html := renderString(t, SiteHeader("/pdf-guides", everythingOpen()))

	pdf := nav.LearnToTrade.Items[0]
	terms := nav.LearnToTrade.Items[2]
	assert.Contains(t, html, `<a href="/pdf-guides" class="`+dropdownItemClass(pdf, true)+`">`)
	assert.Contains(t, html, `<a href="/trading-terminology" class="`+dropdownItemClass(terms, false)+`">`)
	assert.Contains(t, html, `<a href="/pdf-guides" class="`+mobileSubLinkClass(true)+`">PDF GUIDES</a>`)
	// desktop group, dropdown item, accordion button, accordion link
	assert.Equal(t, 4, countActive(html))
}

func TestClosedHeaderHidesPanels(t *testing.T) {
	html := renderString(t, SiteHeader("/", nav.State{}))

	assert.NotContains(t, html, `id="mobile-menu"`)
	assert.NotContains(t, html, `id="dropdown-`)
	assert.NotContains(t, html, `id="accordion-`)
	assert.Contains(t, html, `hx-post="/nav/mobile/open"`)
	assert.Contains(t, html, `<header id="site-header" class="bg-gray-900" hx-target="this" hx-swap="outerHTML">`)
}

func TestOpenDropdownShowsOnlyItsPanel(t *testing.T) {
	var state nav.State
	require.NoError(t, state.ToggleDropdown(nav.GroupUtilities))

	html := renderString(t, SiteHeader("/", state))
	assert.Contains(t, html, `id="dropdown-utilities"`)
	assert.NotContains(t, html, `id="dropdown-learn-to-trade"`)
	assert.Contains(t, html, `aria-expanded="true" hx-post="/nav/dropdown/utilities/toggle"`)
	assert.Contains(t, html, "POSITION SIZE CALCULATOR")
	assert.NotContains(t, html, "PDF GUIDES")
}

func TestMobileMenu(t *testing.T) {
	var state nav.State
	state.OpenMobileMenu()
	require.NoError(t, state.ToggleAccordion(nav.GroupLearnToTrade))

	html := renderString(t, SiteHeader("/", state))
	assert.Contains(t, html, `id="mobile-menu"`)
	assert.Contains(t, html, `hx-post="/nav/mobile/close"`)
	assert.Contains(t, html, `id="accordion-learn-to-trade"`)
	assert.NotContains(t, html, `id="accordion-utilities"`)
	assert.Contains(t, html, "rotate-180")

	state.CloseMobileMenu()
	html = renderString(t, SiteHeader("/", state))
	assert.NotContains(t, html, `id="mobile-menu"`)
	assert.NotContains(t, html, "rotate-180")
}

func TestLogo(t *testing.T) {
	html := renderString(t, SiteHeader("/", nav.State{}))
	assert.Contains(t, html, `<img src="/images/brand/icon-only-light.png" width="54" height="30" alt="Kovacs Trading">`)
}

func TestDropdownItemColSpan(t *testing.T) {
	assert.True(t, strings.HasPrefix(dropdownItemClass(nav.Item{ColSpan: 2}, false), "col-span-2 group"))
	assert.True(t, strings.HasPrefix(dropdownItemClass(nav.Item{}, false), "group"))
}

func TestActiveClassesAreExclusive(t *testing.T) {
	for _, f := range []func(bool) string{desktopLinkClass, dropdownButtonClass, mobileLinkClass, mobileGroupButtonClass, mobileSubLinkClass} {
		assert.NotEqual(t, f(true), f(false))
	}
}

func TestMobileMenuFooter(t *testing.T) {
	html := renderString(t, SiteHeader("/", everythingOpen()))
	assert.Contains(t, html, `<p class="text-gray-900 text-base text-center font-bold pb-4">GET IN TOUCH</p>`)
	assert.Contains(t, html, `<a href="https://www.instagram.com/codewithroby/" target="_blank" rel="noopener" class="max-w-[100px] flex-1 flex justify-center rounded-lg py-2 bg-yellow-400 hover:bg-gray-900" aria-label="Instagram Link">`)

	closed := renderString(t, SiteHeader("/", nav.State{}))
	assert.NotContains(t, closed, "GET IN TOUCH")
}
