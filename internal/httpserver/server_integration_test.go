package httpserver_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/jammehabdou64/documentation/internal/content"
	"github.com/jammehabdou64/documentation/internal/httpserver"
	"github.com/jammehabdou64/documentation/internal/layout"
	"github.com/jammehabdou64/documentation/internal/observability"
	"github.com/jammehabdou64/documentation/internal/render"
	"github.com/jammehabdou64/documentation/internal/routes"
	"github.com/jammehabdou64/documentation/internal/site"
	"github.com/jammehabdou64/documentation/internal/testutil"
)

type serverOptions struct {
	layoutOpts []layout.Option
	siteOpts   []site.Option
	allowIndex bool
}

func newTestServer(t *testing.T, opts serverOptions) *httptest.Server {
	t.Helper()

	s, err := site.New(opts.siteOpts...)
	require.NoError(t, err)
	store, err := content.Load(content.Embedded())
	require.NoError(t, err)
	renderer, err := layout.New(opts.layoutOpts...)
	require.NoError(t, err)
	metrics := observability.NewMetrics()

	bridge, err := render.New(render.Config{Site: s, Content: store, Layout: renderer, Metrics: metrics})
	require.NoError(t, err)

	srv, err := httpserver.New(httpserver.Config{
		Address:       ":0",
		Site:          s,
		Bridge:        bridge,
		Metrics:       metrics,
		AllowIndexing: opts.allowIndex,
	})
	require.NoError(t, err)
	return testutil.NewServer(t, srv.Handler)
}

func TestIndexRendersLandingPage(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	resp, body := testutil.Get(t, ts, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "shell-site", doc.Find("body").AttrOr("class", ""))
	require.Equal(t, "JCC-EXPRESS", doc.Find("h1").First().Text())
	require.Equal(t, 3, doc.Find(".features a.card").Length())
	require.Equal(t, "/docs/artisan-node-cli", doc.Find(".features a.card").Last().AttrOr("href", ""))
}

func TestDocsRootRendersIntroduction(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	resp, body := testutil.Get(t, ts, "/docs")
	require.Equal(t, http.StatusOK, resp.StatusCode, "/docs renders directly, no redirect")

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Docs/introduction/Index", doc.Find("article").AttrOr("data-page", ""))
	require.Equal(t, "/docs/introduction", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "/docs/introduction", doc.Find(".docs-sidebar a.active").AttrOr("href", ""))
}

func TestEveryRouteRendersItsPage(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	for _, entry := range routes.DefaultEntries() {
		entry := entry
		t.Run(entry.Path, func(t *testing.T) {
			t.Parallel()
			resp, body := testutil.Get(t, ts, entry.Path)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			doc := testutil.ParseHTML(t, body)
			if entry.Page.Shell() == routes.ShellDocs {
				require.Equal(t, entry.Page.String(), doc.Find("article").AttrOr("data-page", ""))
				require.Equal(t, 1, doc.Find(".docs-sidebar a.active").Length())
			} else {
				require.Equal(t, 0, doc.Find(".docs-sidebar").Length())
			}
		})
	}
}

func TestUnknownPathsReturnNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	for _, p := range []string{
		"/docs/does-not-exist",
		"/docs/",
		"/docs/helpers",
		"/docs/artisannode-cli",
		"/docs/form-requests",
		"/docs/service-providers",
		"/DOCS",
		"/docs/components",
		"/examples",
		"/assets/",
		"/assets/css/",
	} {
		resp, _ := testutil.Get(t, ts, p)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s", p)
	}
}

func TestInternalLinksResolve(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	seen := map[string]bool{}
	for _, entry := range routes.DefaultEntries() {
		_, body := testutil.Get(t, ts, entry.Path)
		doc := testutil.ParseHTML(t, body)
		doc.Find("a[href], link[href], img[src], script[src]").Each(func(_ int, sel *goquery.Selection) {
			ref := sel.AttrOr("href", sel.AttrOr("src", ""))
			if !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
				return
			}
			if i := strings.IndexByte(ref, '#'); i >= 0 {
				ref = ref[:i]
			}
			seen[ref] = true
		})
	}

	require.True(t, seen["/docs/string-utilities"])
	require.True(t, seen["/assets/css/site.css"])
	require.True(t, seen["/assets/css/chroma.css"])
	for ref := range seen {
		resp, _ := testutil.Get(t, ts, ref)
		require.Equal(t, http.StatusOK, resp.StatusCode, "link %s", ref)
	}
}

func TestOperationalEndpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{siteOpts: []site.Option{site.WithBaseURL("https://docs.example.com")}})

	resp, body := testutil.Get(t, ts, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))

	testutil.Get(t, ts, "/docs/orm")
	resp, body = testutil.Get(t, ts, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `docs_http_requests_total{route="/docs/orm",status="200"} 1`)
	require.Contains(t, string(body), `docs_page_renders_total{page="Docs/orm/Index"} 1`)

	resp, body = testutil.Get(t, ts, "/sitemap.xml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sitemap := string(body)
	require.Equal(t, len(routes.DefaultEntries())-1, strings.Count(sitemap, "<loc>"), "the /docs alias is not listed")
	require.Contains(t, sitemap, "<loc>https://docs.example.com/docs/introduction</loc>")
	require.NotContains(t, sitemap, "<loc>https://docs.example.com/docs</loc>")

	resp, body = testutil.Get(t, ts, "/robots.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "Disallow: /")
	require.Contains(t, string(body), "Sitemap: https://docs.example.com/sitemap.xml")
}

func TestRobotsAllowsIndexingWhenEnabled(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{allowIndex: true})
	_, body := testutil.Get(t, ts, "/robots.txt")
	require.Contains(t, string(body), "Allow: /")
	require.Contains(t, string(body), "Sitemap: "+ts.URL+"/sitemap.xml")
}

func TestHeadRequestsAreServed(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	req, err := http.NewRequest(http.MethodHead, ts.URL+"/docs/routing", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRenderFailureReturnsServerError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	copyTemplates(t, dir)
	ts := newTestServer(t, serverOptions{layoutOpts: []layout.Option{layout.WithDir(dir), layout.WithDevMode(true)}})

	broken := `{{define "sidebar"}}{{.Missing.Field}}{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partials", "sidebar.tmpl"), []byte(broken), 0o600))

	resp, body := testutil.Get(t, ts, "/docs/orm")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "internal server error\n", string(body))

	resp, _ = testutil.Get(t, ts, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode, "the site shell does not use the sidebar")
}

// copyTemplates copies the layout templates from the source tree into dir.
func copyTemplates(t *testing.T, dir string) {
	t.Helper()
	src := os.DirFS(filepath.Join("..", "layout", "templates"))
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		b, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, b, 0o600)
	})
	require.NoError(t, err)
}
