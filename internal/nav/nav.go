package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Group is one labelled section of the documentation sidebar.
type Group struct {
	Title string
	Items []Item
}

// Item is a single sidebar link.
type Item struct {
	Title string
	Href  string
}

// RenderedGroup is a view model for the sidebar templates.
type RenderedGroup struct {
	Title string
	Items []RenderedItem
}

// RenderedItem is a sidebar link with active state.
type RenderedItem struct {
	Title  string
	Href   string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// docs is the sidebar definition. Order is significant and drives visual order.
var docs = []Group{
	{
		Title: "Getting Started",
		Items: []Item{
			{Title: "Introduction", Href: "/docs/introduction"},
			{Title: "Installation", Href: "/docs/installation"},
			{Title: "Quick Start Guide", Href: "/docs/quick-start"},
			{Title: "Project Structure", Href: "/docs/project-structure"},
		},
	},
	{
		Title: "Core Concepts",
		Items: []Item{
			{Title: "Routing", Href: "/docs/routing"},
			{Title: "Controllers", Href: "/docs/controllers"},
			{Title: "Middlewares", Href: "/docs/middlewares"},
			{Title: "ORM (jcc-eloquent)", Href: "/docs/orm"},
			{Title: "Validation", Href: "/docs/validation"},
			{Title: "Form Requests", Href: "/docs/form-request"},
		},
	},
	{
		Title: "Advanced Features",
		Items: []Item{
			{Title: "Service Container & DI", Href: "/docs/service-container"},
			{Title: "Service Providers", Href: "/docs/service-provider"},
			{Title: "ArtisanNode CLI", Href: "/docs/artisan-node-cli"},
			{Title: "TinkerNode", Href: "/docs/tinker-node"},
		},
	},
	{
		Title: "Frontend",
		Items: []Item{
			{Title: "jsBlade Templating", Href: "/docs/jsblade-templating"},
			{Title: "Inertia.js Integration", Href: "/docs/inertia-integration"},
		},
	},
	{
		Title: "Utilities",
		Items: []Item{
			// Helpers (/docs/helpers) stays out until its page is routed.
			{Title: "String Utilities", Href: "/docs/string-utilities"},
		},
	},
}

// Docs returns the documentation sidebar tree. The result is a deep copy.
func Docs() []Group {
	out := make([]Group, len(docs))
	for i, g := range docs {
		items := make([]Item, len(g.Items))
		copy(items, g.Items)
		out[i] = Group{Title: g.Title, Items: items}
	}
	return out
}

// Sidebar renders groups with the item matching currentPath marked active.
func Sidebar(groups []Group, currentPath string) []RenderedGroup {
	currentPath = normalize(currentPath)
	out := make([]RenderedGroup, 0, len(groups))
	for _, g := range groups {
		items := make([]RenderedItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, RenderedItem{
				Title:  it.Title,
				Href:   it.Href,
				Active: it.Href == currentPath,
			})
		}
		out = append(out, RenderedGroup{Title: g.Title, Items: items})
	}
	return out
}

// Hrefs flattens the tree into hrefs in authored order.
func Hrefs(groups []Group) []string {
	var out []string
	for _, g := range groups {
		for _, it := range g.Items {
			out = append(out, it.Href)
		}
	}
	return out
}

// Find returns the group and item whose href equals p.
func Find(groups []Group, p string) (Group, Item, bool) {
	p = normalize(p)
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Href == p {
				return g, it, true
			}
		}
	}
	return Group{}, Item{}, false
}

// Neighbors returns the items before and after currentPath in flattened authored order.
// A missing neighbour is the zero Item.
func Neighbors(groups []Group, currentPath string) (prev, next Item) {
	currentPath = normalize(currentPath)
	var flat []Item
	for _, g := range groups {
		flat = append(flat, g.Items...)
	}
	for i, it := range flat {
		if it.Href != currentPath {
			continue
		}
		if i > 0 {
			prev = flat[i-1]
		}
		if i < len(flat)-1 {
			next = flat[i+1]
		}
		return prev, next
	}
	return Item{}, Item{}
}

// Breadcrumbs builds breadcrumb entries for currentPath.
// Rules:
// - Always start with Home
// - Paths under /docs get a Documentation crumb
// - Known sidebar pages use their group and item titles
// - Other segments get a title-cased label
func Breadcrumbs(groups []Group, currentPath string) []Crumb {
	currentPath = normalize(currentPath)
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(currentPath, "/"), "/")
	if parts[0] == "docs" {
		crumbs = append(crumbs, Crumb{Href: "/docs", Label: "Documentation", Active: len(parts) == 1})
		if len(parts) == 1 {
			return crumbs
		}
		if g, it, ok := Find(groups, currentPath); ok {
			crumbs = append(crumbs,
				Crumb{Label: g.Title},
				Crumb{Href: it.Href, Label: it.Title, Active: true},
			)
			return crumbs
		}
		parts = parts[1:]
	}

	href := ""
	if crumbs[len(crumbs)-1].Href != "/" {
		href = crumbs[len(crumbs)-1].Href
	}
	for i, seg := range parts {
		href = href + "/" + seg
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  titleFromSegment(seg),
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	// Casers keep state; build one per call.
	return cases.Title(language.English).String(s)
}

func normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	clean := path.Clean(p)
	if clean == "." {
		return "/"
	}
	return clean
}
