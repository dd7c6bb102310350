package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jammehabdou64/documentation/internal/observability"
)

func TestRequestLoggerLogsCompletion(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(InjectLogger(zap.New(core)))
	router.Use(RequestLogger())
	router.Get("/docs/{slug}", func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Info("inside")
		_, _ = w.Write([]byte("hello"))
	})
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/orm", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	inside := logs.FilterMessage("inside").All()
	require.Len(t, inside, 1)
	require.NotEmpty(t, inside[0].ContextMap()["request_id"], "handler logger carries request fields")

	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	require.Equal(t, int64(200), fields["status"])
	require.Equal(t, int64(5), fields["bytes"])
	require.Equal(t, "/docs/{slug}", fields["route"])
	require.Equal(t, zapcore.InfoLevel, done[0].Level)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	done = logs.FilterMessage("request completed").All()
	require.Len(t, done, 3)
	require.Equal(t, zapcore.ErrorLevel, done[1].Level)
	require.Equal(t, zapcore.WarnLevel, done[2].Level)
	require.Equal(t, "unmatched", done[2].ContextMap()["route"])
}

func TestRequestLoggerRepanics(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	handler := InjectLogger(zap.New(core))(RequestLogger()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	require.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	require.Equal(t, int64(500), done[0].ContextMap()["status"])
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := observability.NewMetrics()
	router := chi.NewRouter()
	router.Use(Metrics(m))
	router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/docs", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, float64(2), promtestutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/docs", "200")))
	require.Equal(t, float64(1), promtestutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("unmatched", "404")))

	passthrough := Metrics(nil)(http.NotFoundHandler())
	require.NotNil(t, passthrough)
}

func TestAssetsWithCache(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
	}
	handler := http.StripPrefix("/assets", AssetsWithCache(fsys))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
	require.Zero(t, rec.Body.Len())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/missing.css", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Header().Get("ETag"))
}

func TestAssetsWithCacheHidesDirectories(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
		"img/logo.svg": {Data: []byte("<svg/>")},
	}
	handler := http.StripPrefix("/assets", AssetsWithCache(fsys))

	for _, p := range []string{"/assets/", "/assets/css/", "/assets/css", "/assets/img/"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusNotFound, rec.Code, "path %s", p)
		require.NotContains(t, rec.Body.String(), "site.css", "path %s lists directory", p)
	}
}
