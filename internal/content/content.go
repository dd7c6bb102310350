// Package content loads the markdown pages of the site, renders them to sanitised HTML and
// extracts the headings used for the "On this page" table of contents.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/jammehabdou64/documentation/internal/routes"
)

//go:embed pages/*.md
var embedded embed.FS

// Embedded returns the pages compiled into the binary, rooted so that "<slug>.md" resolves.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "pages")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// Page is a rendered page ready for a layout.
type Page struct {
	ID       routes.PageID
	Slug     string
	Title    string
	Summary  string
	Body     template.HTML
	Headings []Heading
	Banner   *Banner
	SEO      SEO
	Features []Feature
}

// Heading is a table of contents entry.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Banner is an optional callout shown above the body.
type Banner struct {
	Variant string
	Title   string
	Message string
}

// SEO holds optional metadata overrides.
type SEO struct {
	Title       string
	Description string
}

// Feature is a landing page card.
type Feature struct {
	Title       string
	Description string
	Body        string
	Href        string
}

type frontMatter struct {
	Title    string             `yaml:"title"`
	Summary  string             `yaml:"summary"`
	Banner   *frontMatterBanner `yaml:"banner"`
	SEO      frontMatterSEO     `yaml:"seo"`
	Features []frontMatterCard  `yaml:"features"`
}

type frontMatterBanner struct {
	Variant string `yaml:"variant"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type frontMatterCard struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Body        string `yaml:"body"`
	Href        string `yaml:"href"`
}

// MissingPageError lists pages without a markdown source.
type MissingPageError struct {
	Slugs []string
}

// Error implements the error interface.
func (e *MissingPageError) Error() string {
	return fmt.Sprintf("content: missing pages [%s]", strings.Join(e.Slugs, ", "))
}

// Store holds every rendered page. It is immutable after Load.
type Store struct {
	pages map[routes.PageID]Page
}

// Load reads "<slug>.md" for every declared page from fsys and renders it.
// A page without a source file is an error, so the render bridge never meets an unknown id.
func Load(fsys fs.FS) (*Store, error) {
	md := newMarkdown()
	policy := newPolicy()

	s := &Store{pages: make(map[routes.PageID]Page)}
	var missing []string
	for _, id := range routes.AllPages() {
		name := id.Slug() + ".md"
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, id.Slug())
				continue
			}
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		page, err := parsePage(md, policy, id, raw)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		s.pages[id] = page
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingPageError{Slugs: missing}
	}
	return s, nil
}

// Page returns the rendered page for id.
func (s *Store) Page(id routes.PageID) (Page, bool) {
	if s == nil {
		return Page{}, false
	}
	p, ok := s.pages[id]
	if !ok {
		return Page{}, false
	}
	return clonePage(p), true
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, highlighter()),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

var (
	headingIDPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
	codeClassPattern = regexp.MustCompile(`^language-[a-zA-Z0-9\-_]+$`)
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").Matching(headingIDPattern).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").Matching(codeClassPattern).OnElements("code")
	p.AllowElements("pre", "span")
	p.AllowAttrs("class").Matching(highlightClassPattern).OnElements("pre", "span")
	// Links in page content are authored by us, mostly internal.
	p.RequireNoFollowOnLinks(false)
	return p
}

func parsePage(md goldmark.Markdown, policy *bluemonday.Policy, id routes.PageID, raw []byte) (Page, error) {
	fm, body := splitFrontMatter(string(raw))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("parse front matter: %w", err)
		}
	}

	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))
	headings := collectHeadings(doc, src)

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, doc); err != nil {
		return Page{}, fmt.Errorf("render markdown: %w", err)
	}
	safe := policy.SanitizeBytes(buf.Bytes())

	page := Page{
		ID:       id,
		Slug:     id.Slug(),
		Title:    strings.TrimSpace(front.Title),
		Summary:  strings.TrimSpace(front.Summary),
		Body:     template.HTML(safe), //nolint:gosec // sanitised above
		Headings: headings,
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	if page.Title == "" {
		page.Title = prettifySlug(page.Slug)
	}
	if front.Banner != nil {
		page.Banner = &Banner{
			Variant: firstNonEmpty(strings.TrimSpace(front.Banner.Variant), "info"),
			Title:   strings.TrimSpace(front.Banner.Title),
			Message: strings.TrimSpace(front.Banner.Message),
		}
	}
	for _, card := range front.Features {
		page.Features = append(page.Features, Feature{
			Title:       strings.TrimSpace(card.Title),
			Description: strings.TrimSpace(card.Description),
			Body:        strings.TrimSpace(card.Body),
			Href:        strings.TrimSpace(card.Href),
		})
	}
	return page, nil
}

// collectHeadings returns h2 and h3 headings in document order.
func collectHeadings(doc ast.Node, src []byte) []Heading {
	var out []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < 2 || h.Level > 3 {
			return ast.WalkSkipChildren, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		out = append(out, Heading{
			Level: h.Level,
			ID:    id,
			Text:  headingText(h, src),
		})
		return ast.WalkSkipChildren, nil
	})
	return out
}

func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		default:
			b.WriteString(headingText(c, src))
		}
	}
	return strings.TrimSpace(b.String())
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimPrefix(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func clonePage(src Page) Page {
	cp := src
	if src.Banner != nil {
		b := *src.Banner
		cp.Banner = &b
	}
	cp.Headings = append([]Heading(nil), src.Headings...)
	cp.Features = append([]Feature(nil), src.Features...)
	return cp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
