package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodyBytes = 8 << 20

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrProductNotFound    = errors.New("product not found")
)

// CatalogClient reads products from the catalog API. Every call is a single
// attempt; failures surface immediately.
type CatalogClient struct {
	BaseURL string
	Client  *http.Client
}

// NewCatalogClient builds a client for baseURL. A zero timeout leaves requests
// unbounded.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &CatalogClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *CatalogClient) FetchAll(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "/products", &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if out == nil {
		out = []Product{}
	}
	return out, nil
}

// FetchOne does not distinguish a missing id from any other failure.
func (c *CatalogClient) FetchOne(ctx context.Context, id int64) (Product, error) {
	var p Product
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &p); err != nil {
		return Product{}, fmt.Errorf("%w: id=%d: %w", ErrProductNotFound, id, err)
	}
	return p, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("status=%d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
