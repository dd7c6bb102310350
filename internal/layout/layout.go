// Package layout renders page bodies inside the two layout shells of the site: the site
// shell (header, body, footer) used by the landing page and the docs shell (sidebar, body,
// table of contents, pager) used by documentation pages.
package layout

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/jammehabdou64/documentation/internal/routes"
)

//go:embed templates
var embedded embed.FS

var shellPatterns = map[routes.Shell][]string{
	routes.ShellSite: {"base.tmpl", "partials/*.tmpl", "pages/home.tmpl"},
	routes.ShellDocs: {"base.tmpl", "partials/*.tmpl", "pages/doc.tmpl"},
}

// Renderer executes the layout shells. Templates are parsed once from the embedded set,
// or reparsed from a directory on every call in dev mode.
type Renderer struct {
	dir   string
	dev   bool
	now   func() time.Time
	cache map[routes.Shell]*template.Template
}

// Option customises New.
type Option func(*Renderer)

// WithDir reads templates from dir instead of the embedded set.
func WithDir(dir string) Option {
	return func(r *Renderer) { r.dir = dir }
}

// WithDevMode reparses templates on every render.
func WithDevMode(dev bool) Option {
	return func(r *Renderer) { r.dev = dev }
}

// WithClock overrides the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New parses both shells and fails fast on template errors.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if _, err := r.source(); err != nil {
		return nil, err
	}

	cache := make(map[routes.Shell]*template.Template, len(shellPatterns))
	for shell := range shellPatterns {
		t, err := r.parse(shell)
		if err != nil {
			return nil, err
		}
		cache[shell] = t
	}
	r.cache = cache
	return r, nil
}

// Render executes the shell with data and writes the result to w. Nothing is written when
// execution fails, so callers can still send an error status.
func (r *Renderer) Render(w io.Writer, shell routes.Shell, data any) error {
	t, err := r.lookup(shell)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("layout: execute %s shell: %w", shell, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) lookup(shell routes.Shell) (*template.Template, error) {
	if _, ok := shellPatterns[shell]; !ok {
		return nil, fmt.Errorf("layout: unknown shell %s", shell)
	}
	if r.dev {
		return r.parse(shell)
	}
	return r.cache[shell], nil
}

func (r *Renderer) source() (fs.FS, error) {
	if r.dir != "" {
		info, err := os.Stat(r.dir)
		if err != nil {
			return nil, fmt.Errorf("layout: templates dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("layout: templates dir %s is not a directory", r.dir)
		}
		return os.DirFS(r.dir), nil
	}
	return fs.Sub(embedded, "templates")
}

func (r *Renderer) parse(shell routes.Shell) (*template.Template, error) {
	fsys, err := r.source()
	if err != nil {
		return nil, err
	}
	t, err := template.New("_root").Funcs(r.funcs(shell)).ParseFS(fsys, shellPatterns[shell]...)
	if err != nil {
		return nil, fmt.Errorf("layout: parse %s shell: %w", shell, err)
	}
	return t, nil
}

func (r *Renderer) funcs(shell routes.Shell) template.FuncMap {
	return template.FuncMap{
		"shell": func() string { return shell.String() },
		"year":  func() int { return r.now().Year() },
		"isDocs": func(p string) bool {
			return p == "/docs" || strings.HasPrefix(p, "/docs/")
		},
		// Values come from json.Marshal, which escapes <, > and &.
		"jsonld": func(s string) template.JS { return template.JS(s) }, //nolint:gosec
	}
}
