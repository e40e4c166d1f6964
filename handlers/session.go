package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/kovacs-trading/site/cache"
	"github.com/kovacs-trading/site/config"
	"github.com/kovacs-trading/site/local"
	"github.com/kovacs-trading/site/nav"
)

// Session keys of the navigation state
const (
	keyMobileMenu = "nav_mobile"
	keyDropdowns  = "nav_dropdowns"
	keyAccordions = "nav_accordions"
)

var (
	sessionStorage *cache.Storage
	store          *session.Store
)

// InitSessionStore creates the ristretto backed session store. Each browser
// session owns one navigation state.
func InitSessionStore() error {
	s, err := cache.NewStorage("Session Cache")
	if err != nil {
		return err
	}
	if sessionStorage != nil {
		sessionStorage.Close()
	}
	sessionStorage = s
	store = session.New(session.Config{
		Storage:        s,
		Expiration:     config.SessionExpiration,
		KeyLookup:      "cookie:" + config.SessionCookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return nil
}

func joinGroupIDs(ids []nav.GroupID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

func splitGroupIDs(v interface{}) []nav.GroupID {
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	var ids []nav.GroupID
	for _, part := range strings.Split(s, ",") {
		ids = append(ids, nav.GroupID(part))
	}
	return ids
}

func loadNavState(c *fiber.Ctx) (nav.State, *session.Session, error) {
	sess, err := store.Get(c)
	if err != nil {
		return nav.State{}, nil, err
	}
	mobile, _ := sess.Get(keyMobileMenu).(bool)
	state := nav.Restore(mobile, splitGroupIDs(sess.Get(keyDropdowns)), splitGroupIDs(sess.Get(keyAccordions)))
	return state, sess, nil
}

// saveNavState writes state and releases sess
func saveNavState(sess *session.Session, state nav.State) error {
	sess.Set(keyMobileMenu, state.MobileMenuOpen)
	sess.Set(keyDropdowns, joinGroupIDs(state.OpenDropdowns()))
	sess.Set(keyAccordions, joinGroupIDs(state.OpenAccordions()))
	return sess.Save()
}

// updateNavState applies change to the session's navigation state. Session
// failures are logged and the request continues with the default state.
func updateNavState(c *fiber.Ctx, change func(*nav.State) error) (nav.State, error) {
	state, sess, err := loadNavState(c)
	if err != nil {
		log.Printf("[SESSION] Failed to load navigation state: %v", err)
	}
	if err := change(&state); err != nil {
		return state, err
	}
	if sess != nil {
		if err := saveNavState(sess, state); err != nil {
			log.Printf("[SESSION] Failed to save navigation state: %v", err)
		}
	}
	return state, nil
}

// NavigationMiddleware runs for full page loads: loading a page is a
// navigation, so every open overlay of the visitor's header closes. The
// registered route is used rather than the raw path, which may differ in case
// or carry a trailing slash.
func NavigationMiddleware(c *fiber.Ctx) error {
	path := c.Route().Path
	state, _ := updateNavState(c, func(s *nav.State) error {
		s.Navigate(path)
		return nil
	})
	local.SetNavState(c, state)
	return c.Next()
}
