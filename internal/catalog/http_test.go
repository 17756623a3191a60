package catalog_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Storefront/internal/catalog"
)

func newCatalogTS(t *testing.T, deps catalog.HTTPDeps) *httptest.Server {
	t.Helper()

	s := &catalog.Server{Store: catalog.NewStore()}
	deps.Log = zap.NewNop()
	deps.Service = "catalog"

	ts := httptest.NewServer(catalog.NewHandler(s, deps))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, header http.Header) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func TestCatalog_ListOrderedByID(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	code, body := get(t, ts.URL+"/products", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", code, body)
	}

	var products []map[string]any
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatalf("decode: %v body=%s", err, body)
	}
	if len(products) != len(catalog.DemoProducts()) {
		t.Fatalf("expected %d products, got %d", len(catalog.DemoProducts()), len(products))
	}

	var prev float64
	for _, p := range products {
		id, _ := p["id"].(float64)
		if id <= prev {
			t.Fatalf("products not ordered by id: %v after %v", id, prev)
		}
		prev = id
	}

	if _, ok := products[0]["in_stock"]; !ok {
		t.Fatalf("in_stock missing: %#v", products[0])
	}
}

func TestCatalog_GetOne(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	code, body := get(t, ts.URL+"/products/2", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", code, body)
	}
	var p struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 2 || p.Name != "Espresso Machine" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestCatalog_GetErrors(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{})

	cases := []struct {
		path string
		want int
		msg  string
	}{
		{"/products/999", http.StatusNotFound, "not found"},
		{"/products/abc", http.StatusBadRequest, "bad id"},
	}

	for _, tc := range cases {
		code, body := get(t, ts.URL+tc.path, nil)
		if code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.want, code)
		}
		var e struct {
			Error     string `json:"error"`
			RequestID string `json:"request_id"`
		}
		if err := json.Unmarshal(body, &e); err != nil {
			t.Fatalf("%s: decode: %v", tc.path, err)
		}
		if e.Error != tc.msg {
			t.Fatalf("%s: error = %q, want %q", tc.path, e.Error, tc.msg)
		}
		if e.RequestID == "" {
			t.Fatalf("%s: request_id missing", tc.path)
		}
	}
}

func TestCatalog_Probes(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{RateLimitPerMin: 1})

	for _, path := range []string{"/healthz", "/readyz", "/healthz", "/readyz"} {
		if code, _ := get(t, ts.URL+path, nil); code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, code)
		}
	}
}

func TestCatalog_RateLimit(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{RateLimitPerMin: 2})

	for i := 0; i < 2; i++ {
		if code, _ := get(t, ts.URL+"/products", nil); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code, _ := get(t, ts.URL+"/products/1", nil); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}

func TestCatalog_MetricsAuth(t *testing.T) {
	ts := newCatalogTS(t, catalog.HTTPDeps{
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		MetricsToken:   "s3cret",
	})

	if code, _ := get(t, ts.URL+"/products", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	if code, _ := get(t, ts.URL+"/metrics", nil); code != http.StatusForbidden {
		t.Fatalf("metrics without token: expected 403, got %d", code)
	}

	code, body := get(t, ts.URL+"/metrics", http.Header{"Authorization": {"Bearer s3cret"}})
	if code != http.StatusOK {
		t.Fatalf("metrics with token: expected 200, got %d", code)
	}
	want := `http_requests_total{method="GET",path="/products",service="catalog",status="200"} 1`
	if !strings.Contains(string(body), want) {
		t.Fatalf("metrics output missing %q:\n%s", want, body)
	}
}
