package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kovacs-trading/site/nav"
)

type SitemapURL struct {
	Loc        string    `xml:"loc"`
	LastMod    time.Time `xml:"lastmod"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   string    `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// HandleSitemap lists every page reachable from the navigation header
func HandleSitemap(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	now := time.Now()

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, path := range nav.Paths() {
		priority := "0.8"
		if path == nav.Home.Href {
			priority = "1.0"
		}
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        baseURL + path,
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	c.Set("Content-Type", "application/xml")
	return c.XML(sitemap)
}
