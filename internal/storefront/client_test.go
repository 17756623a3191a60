package storefront_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/internal/storefront"
)

const catalogJSON = `[
	{"id": 1, "name": "Widget", "category": "Electronics", "price": 19.999, "in_stock": true,
	 "created_at": "2024-01-15T10:30:00Z", "description": "d1", "tags": ["a", "b"]},
	{"id": 2, "name": "Toaster", "category": "Appliances", "price": "35.5", "in_stock": false,
	 "created_at": "2024-02-01T08:00:00", "description": "d2", "tags": null},
	{"id": 3, "name": "Gift", "category": "Gifts", "price": 10,
	 "created_at": null, "description": "", "tags": []},
	{"id": 4, "name": "Book", "category": "Books", "price": 7.25, "created_at": "2024-03-09"},
	{"id": 5, "name": "Odd", "category": "Books", "price": 1, "created_at": "last tuesday"}
]`

func newTestServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestCatalogClient_FetchAllDecodesProducts(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogJSON))
	})

	c := storefront.NewCatalogClient(ts.URL+"/", time.Second)
	products, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)

	w := products[0]
	assert.Equal(t, int64(1), w.ID)
	assert.Equal(t, "Widget", w.Name)
	assert.Equal(t, "19.999", w.Price.String())
	assert.True(t, w.InStock)
	assert.Equal(t, time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC), w.CreatedAt.UTC())
	assert.Equal(t, []string{"a", "b"}, w.Tags)

	assert.Equal(t, "35.5", products[1].Price.String())
	assert.False(t, products[1].InStock)
	assert.Equal(t, 2024, products[1].CreatedAt.Year())
	assert.Empty(t, products[1].Tags)

	assert.True(t, products[2].CreatedAt.IsZero())
	assert.Equal(t, time.March, products[3].CreatedAt.Month())
	assert.True(t, products[4].CreatedAt.IsZero())
}

func TestCatalogClient_FetchAllEmptyArray(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := storefront.NewCatalogClient(ts.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCatalogClient_FetchAllFailuresAreCatalogUnavailable(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }},
		{"not modified", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotModified)
		}},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"not": "an array"`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.h)

			products, err := storefront.NewCatalogClient(ts.URL, time.Second).FetchAll(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, storefront.ErrCatalogUnavailable), "err=%v", err)
			assert.Nil(t, products)
		})
	}
}

func TestCatalogClient_FetchAllTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := storefront.NewCatalogClient(url, time.Second).FetchAll(context.Background())
	assert.ErrorIs(t, err, storefront.ErrCatalogUnavailable)
}

func TestCatalogClient_FetchAllTimeout(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	start := time.Now()
	_, err := storefront.NewCatalogClient(ts.URL, 50*time.Millisecond).FetchAll(context.Background())
	assert.ErrorIs(t, err, storefront.ErrCatalogUnavailable)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCatalogClient_FetchOne(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/7":
			_, _ = w.Write([]byte(`{"id": 7, "name": "Lamp", "category": "Home", "price": 12.5, "in_stock": true}`))
		case "/products/8":
			http.Error(w, "boom", http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	})
	c := storefront.NewCatalogClient(ts.URL, time.Second)

	p, err := c.FetchOne(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", p.Name)
	assert.Equal(t, "$12.50", storefront.FormatPrice(p.Price))

	for _, id := range []int64{8, 404} {
		_, err := c.FetchOne(context.Background(), id)
		assert.ErrorIs(t, err, storefront.ErrProductNotFound, "id %d", id)
		assert.NotErrorIs(t, err, storefront.ErrCatalogUnavailable)
	}
}

func TestCatalogClient_ContextCancelled(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storefront.NewCatalogClient(ts.URL, 0).FetchAll(ctx)
	assert.ErrorIs(t, err, storefront.ErrCatalogUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
