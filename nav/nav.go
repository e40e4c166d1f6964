package nav

import (
	"errors"
	"fmt"
	"slices"
)

// GroupID identifies a disclosure group. The same id names the desktop
// dropdown and the mobile accordion of the group.
type GroupID string

const (
	GroupLearnToTrade GroupID = "learn-to-trade"
	GroupUtilities    GroupID = "utilities"
)

var ErrUnknownGroup = errors.New("unknown navigation group")

// Item is a single navigation link.
type Item struct {
	Name        string
	Href        string
	Description string
	Icon        string
	ColSpan     int // layout hint for the dropdown grid, 0 for none
}

// Active reports whether the item points at currentPath.
func (i Item) Active(currentPath string) bool {
	return currentPath == i.Href
}

// Group is a set of links shown as a desktop dropdown and a mobile accordion.
type Group struct {
	ID          GroupID
	Label       string
	Items       []Item
	ActivePaths []string
}

// Active reports whether currentPath belongs to the group. The active set
// may contain paths that have no item in the group.
func (g Group) Active(currentPath string) bool {
	return slices.Contains(g.ActivePaths, currentPath)
}

var Home = Item{
	Name: "HOME",
	Href: "/",
}

var LearnToTrade = Group{
	ID:    GroupLearnToTrade,
	Label: "LEARN TO TRADE",
	Items: []Item{
		{
			Name:        "PDF GUIDES",
			Description: "The best PDF guides created by experienced traders. Access their knowledge and expertise to take your trading to the next level.",
			Href:        "/pdf-guides",
			Icon:        "file-pdf",
			ColSpan:     2,
		},
		{
			Name:        "BEST TRADING CREATORS",
			Description: "Learn more about trading from these creators who post daily about their trading experiences.",
			Href:        "/best-trading-creators",
			Icon:        "group",
			ColSpan:     2,
		},
		{
			Name:        "TRADING TERMINOLOGY",
			Description: "Learning the terminology of trading can help you understand the specific terms used in trading, which can improve your comprehension of trading materials and communication with other traders.",
			Href:        "/trading-terminology",
			Icon:        "open-book",
			ColSpan:     2,
		},
	},
	ActivePaths: []string{
		"/getting-started",
		"/best-trading-creators",
		"/pdf-guides",
		"/trading-terminology",
	},
}

var Utilities = Group{
	ID:    GroupUtilities,
	Label: "UTILITIES",
	Items: []Item{
		{
			Name:        "POSITION SIZE CALCULATOR",
			Description: "Calculate your trade's position size quickly and easily with our free online calculator.",
			Href:        "/position-size-calculator",
			Icon:        "calculator",
		},
	},
	ActivePaths: []string{
		"/position-size-calculator",
	},
}

var BestCryptoExchange = Item{
	Name: "BEST CRYPTO EXCHANGE",
	Href: "/best-crypto-exchange",
}

var Instagram = Item{
	Name: "Instagram Link",
	Href: "https://www.instagram.com/codewithroby/",
	Icon: "instagram",
}

// Groups lists the disclosure groups in display order.
var Groups = []Group{LearnToTrade, Utilities}

// GroupByID returns the group with the given id.
func GroupByID(id GroupID) (Group, error) {
	for _, g := range Groups {
		if g.ID == id {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("%w: %q", ErrUnknownGroup, id)
}

// Paths returns every internal destination reachable from the header, in
// display order, without duplicates.
func Paths() []string {
	var paths []string
	add := func(p string) {
		if !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	add(Home.Href)
	for _, g := range Groups {
		for _, p := range g.ActivePaths {
			add(p)
		}
		for _, item := range g.Items {
			add(item.Href)
		}
	}
	add(BestCryptoExchange.Href)
	return paths
}

// Validate checks the static navigation configuration.
func Validate() error {
	return validate(Groups, []Item{Home, BestCryptoExchange, Instagram})
}

func validate(groups []Group, links []Item) error {
	for _, item := range links {
		if err := validateItem(item); err != nil {
			return err
		}
	}
	seen := make(map[GroupID]bool)
	owner := make(map[string]GroupID)
	for _, g := range groups {
		if g.ID == "" || g.Label == "" {
			return fmt.Errorf("group %q: empty id or label", g.Label)
		}
		if seen[g.ID] {
			return fmt.Errorf("group %q: duplicate id", g.ID)
		}
		seen[g.ID] = true
		for _, item := range g.Items {
			if err := validateItem(item); err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
		}
		for _, p := range g.ActivePaths {
			if other, ok := owner[p]; ok {
				return fmt.Errorf("path %q is active for both %q and %q", p, other, g.ID)
			}
			owner[p] = g.ID
		}
	}
	return nil
}

func validateItem(item Item) error {
	if item.Name == "" || item.Href == "" {
		return fmt.Errorf("navigation item %q -> %q: name and path are required", item.Name, item.Href)
	}
	return nil
}
