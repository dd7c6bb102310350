// Package site holds the immutable configuration of the documentation site: its identity,
// the sidebar navigation and the route table. A Site is built once at start-up and shared
// by pointer; nothing mutates it afterwards.
package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jammehabdou64/documentation/internal/nav"
	"github.com/jammehabdou64/documentation/internal/routes"
)

const (
	defaultName      = "JCC-EXPRESS"
	defaultTagline   = "A Laravel-inspired MVC framework for Express.js"
	defaultGitHubURL = "https://github.com/yourusername/jcc-express-starter"
)

// Site is the read-only configuration consumed by layouts and the render bridge.
type Site struct {
	Name      string
	Tagline   string
	GitHubURL string
	BaseURL   string

	navigation []nav.Group
	routes     *routes.Table
}

// Option customises New.
type Option func(*options)

type options struct {
	name      string
	tagline   string
	githubURL string
	baseURL   string
	groups    []nav.Group
	entries   []routes.Entry
}

// WithName overrides the site name shown in the header and titles.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithGitHubURL overrides the repository link in the header and footer.
func WithGitHubURL(url string) Option {
	return func(o *options) { o.githubURL = url }
}

// WithBaseURL sets the absolute origin used for canonical links and the sitemap.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithNavigation replaces the sidebar tree. Intended for tests.
func WithNavigation(groups []nav.Group) Option {
	return func(o *options) { o.groups = groups }
}

// WithRoutes replaces the route entries. Intended for tests.
func WithRoutes(entries ...routes.Entry) Option {
	return func(o *options) { o.entries = entries }
}

// New builds the site configuration and validates it. Duplicate routes and dead sidebar
// links are construction errors.
func New(opts ...Option) (*Site, error) {
	o := options{
		name:      defaultName,
		tagline:   defaultTagline,
		githubURL: defaultGitHubURL,
		groups:    nav.Docs(),
		entries:   routes.DefaultEntries(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	table, err := routes.NewTable(o.entries...)
	if err != nil {
		return nil, fmt.Errorf("site: build route table: %w", err)
	}

	s := &Site{
		Name:       firstNonEmpty(o.name, defaultName),
		Tagline:    o.tagline,
		GitHubURL:  firstNonEmpty(o.githubURL, defaultGitHubURL),
		BaseURL:    strings.TrimRight(strings.TrimSpace(o.baseURL), "/"),
		navigation: copyGroups(o.groups),
		routes:     table,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Navigation returns a copy of the sidebar tree.
func (s *Site) Navigation() []nav.Group {
	return copyGroups(s.navigation)
}

// Routes returns the route table. Tables are immutable.
func (s *Site) Routes() *routes.Table {
	return s.routes
}

// AbsoluteURL joins BaseURL and p. Without a base URL the path is returned unchanged.
func (s *Site) AbsoluteURL(p string) string {
	if s.BaseURL == "" {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return s.BaseURL + p
}

// DeadLinkError lists sidebar hrefs that have no route.
type DeadLinkError struct {
	Hrefs []string
}

// Error implements the error interface.
func (e *DeadLinkError) Error() string {
	return fmt.Sprintf("site: navigation links without a route [%s]", strings.Join(e.Hrefs, ", "))
}

// Validate checks that every sidebar href resolves to a registered route and that hrefs are
// unique across the tree.
func (s *Site) Validate() error {
	var dead []string
	seen := map[string]bool{}
	for _, href := range nav.Hrefs(s.navigation) {
		if seen[href] {
			return fmt.Errorf("site: navigation href %s appears more than once", href)
		}
		seen[href] = true
		if !s.routes.Has(href) {
			dead = append(dead, href)
		}
	}
	if len(dead) > 0 {
		sort.Strings(dead)
		return &DeadLinkError{Hrefs: dead}
	}
	return nil
}

func copyGroups(groups []nav.Group) []nav.Group {
	out := make([]nav.Group, len(groups))
	for i, g := range groups {
		items := make([]nav.Item, len(g.Items))
		copy(items, g.Items)
		out[i] = nav.Group{Title: g.Title, Items: items}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
