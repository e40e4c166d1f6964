package handlers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kovacs-trading/site/nav"
	"github.com/kovacs-trading/site/ui"
)

// currentPath is the path of the page a partial request was issued from.
// htmx reports it in HX-Current-URL; Referer is the fallback. URLs of another
// host are ignored, and an unknown page yields "" so that no link is
// highlighted.
func currentPath(c *fiber.Ctx) string {
	for _, header := range []string{"HX-Current-URL", fiber.HeaderReferer} {
		raw := c.Get(header)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Host != c.Hostname() {
			continue
		}
		return routePath(u.Path)
	}
	return ""
}

// routePath maps path to the page route it is served by. Routing ignores
// case and a trailing slash, so the same page has several spellings.
func routePath(path string) string {
	if path == "" {
		return "/"
	}
	trimmed := strings.TrimSuffix(path, "/")
	for _, p := range nav.Paths() {
		if strings.EqualFold(p, path) || (trimmed != "" && strings.EqualFold(p, trimmed)) {
			return p
		}
	}
	return path
}

func groupParam(c *fiber.Ctx) nav.GroupID {
	return nav.GroupID(c.Params("id"))
}

// renderHeader applies change and answers with the re-rendered header
func renderHeader(c *fiber.Ctx, change func(*nav.State) error) error {
	state, err := updateNavState(c, change)
	if err != nil {
		if errors.Is(err, nav.ErrUnknownGroup) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return render(c, ui.SiteHeader(currentPath(c), state))
}

func HandleMobileMenuOpen(c *fiber.Ctx) error {
	return renderHeader(c, func(s *nav.State) error {
		s.OpenMobileMenu()
		return nil
	})
}

func HandleMobileMenuClose(c *fiber.Ctx) error {
	return renderHeader(c, func(s *nav.State) error {
		s.CloseMobileMenu()
		return nil
	})
}

func HandleDropdownToggle(c *fiber.Ctx) error {
	id := groupParam(c)
	return renderHeader(c, func(s *nav.State) error {
		return s.ToggleDropdown(id)
	})
}

func HandleAccordionToggle(c *fiber.Ctx) error {
	id := groupParam(c)
	return renderHeader(c, func(s *nav.State) error {
		return s.ToggleAccordion(id)
	})
}
