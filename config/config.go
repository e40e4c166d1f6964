package config

import (
	"os"
	"time"
)

const (
	// SiteName is used for page titles and the logo alt text.
	SiteName = "Kovacs Trading"

	ServerBodyLimit    = 64 * 1024
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute
	ServerStaticDir    = "./static"
	ServerDefaultPort  = "8080"

	// Navigation state lives for the browser session only.
	SessionExpiration = 2 * time.Hour
	SessionCookieName = "kt_session"

	// Ristretto sizing for the session store.
	SessionCacheCounters = 1e5
	SessionCacheMaxCost  = 1 << 22
)

// CDN assets
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"
)

// Brand assets
const (
	LogoURL    = "/images/brand/icon-only-light.png"
	LogoWidth  = 54
	LogoHeight = 30
	FaviconURL = "/images/brand/favicon-32x32.png"
	IconDir    = "/images/icons"
)

// ServerPort is the listen port, overridable with PORT.
var ServerPort = envOr("PORT", ServerDefaultPort)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
