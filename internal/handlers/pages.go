package handlers

import (
	"strings"

	"github.com/jammehabdou64/documentation/internal/content"
	"github.com/jammehabdou64/documentation/internal/nav"
	"github.com/jammehabdou64/documentation/internal/seo"
	"github.com/jammehabdou64/documentation/internal/site"
)

// PageData is the view model for pages rendered inside a layout shell.
type PageData struct {
	Title     string
	Lang      string
	SEO       SEOData
	Analytics Analytics

	SiteName  string
	Tagline   string
	GitHubURL string

	// Path is the canonical path of the page; the docs shell highlights it in the sidebar.
	Path        string
	Nav         []nav.RenderedGroup
	Breadcrumbs []nav.Crumb
	Prev        nav.Item
	Next        nav.Item

	Page  content.Page
	Props map[string]any
}

// SEOData is a lightweight copy to avoid leaking seo types into templates.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          struct {
		Title       string
		Description string
		Type        string
		URL         string
		SiteName    string
	}
	Twitter struct {
		Card string
	}
	JSONLD []string
}

// BuildDocData constructs the view model of a documentation page. canonicalPath is the
// path the page is registered under first, even when it was requested through an alias.
func BuildDocData(s *site.Site, page content.Page, canonicalPath string, analytics Analytics) PageData {
	groups := s.Navigation()
	prev, next := nav.Neighbors(groups, canonicalPath)
	crumbs := nav.Breadcrumbs(groups, canonicalPath)

	title := firstNonEmpty(page.SEO.Title, page.Title) + " | " + s.Name
	description := firstNonEmpty(page.SEO.Description, page.Summary, s.Tagline)
	canonical := s.AbsoluteURL(canonicalPath)

	data := PageData{
		Title:       page.Title,
		Lang:        "en",
		Analytics:   analytics,
		SiteName:    s.Name,
		Tagline:     s.Tagline,
		GitHubURL:   s.GitHubURL,
		Path:        canonicalPath,
		Nav:         nav.Sidebar(groups, canonicalPath),
		Breadcrumbs: crumbs,
		Prev:        prev,
		Next:        next,
		Page:        page,
	}
	data.SEO = buildSEO(s, title, description, canonical, "article")
	data.SEO.JSONLD = []string{
		seo.JSON(seo.TechArticle(page.Title, description, canonical, s.Name)),
		seo.JSON(seo.BreadcrumbList(breadcrumbItems(s, crumbs))),
	}
	return data
}

func buildSEO(s *site.Site, title, description, canonical, ogType string) SEOData {
	var out SEOData
	out.Title = title
	out.Description = description
	out.Canonical = canonical
	out.Robots = "index,follow"
	out.OG.Title = title
	out.OG.Description = description
	out.OG.Type = ogType
	out.OG.URL = canonical
	out.OG.SiteName = s.Name
	out.Twitter.Card = "summary"
	return out
}

// breadcrumbItems maps linked crumbs to JSON-LD items. Sidebar group labels have no page
// of their own and are left out.
func breadcrumbItems(s *site.Site, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		if c.Href == "" {
			continue
		}
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: s.AbsoluteURL(c.Href)})
	}
	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
