package storefront

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const loadFailedBanner = "Could not load products. Check the catalog service and restart."

// Fetcher is the part of CatalogClient the controller depends on.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Product, error)
	FetchOne(ctx context.Context, id int64) (Product, error)
}

// Controller applies user actions to the catalog and cart and re-renders the
// affected parts of the screen. It is driven from a single event loop.
type Controller struct {
	Catalog *Catalog
	Cart    *Cart
	Screen  *Screen
	Client  Fetcher
	Log     *zap.Logger

	query string
}

// NewController starts a browsing session with an empty catalog and cart.
func NewController(client Fetcher, log *zap.Logger, opts ...ScreenOption) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		Catalog: NewCatalog(),
		Cart:    NewCart(),
		Screen:  NewScreen(opts...),
		Client:  client,
		Log:     log.With(zap.String("session_id", uuid.NewString())),
	}
}

// Start fetches the catalog and draws the grid.
func (c *Controller) Start(ctx context.Context) error {
	products, err := c.Client.FetchAll(ctx)
	return c.Loaded(products, err)
}

// Loaded finishes a catalog fetch started elsewhere. On failure the catalog is
// left as it was, the banner is shown and err is returned.
func (c *Controller) Loaded(products []Product, err error) error {
	if err != nil {
		c.Log.Error("load catalog failed", zap.Error(err))
		c.Screen.ShowError(loadFailedBanner)
		c.Screen.RenderGrid(c.Catalog.Filter(c.query))
		return err
	}

	if dropped := c.Catalog.Load(products); dropped > 0 {
		c.Log.Warn("catalog has duplicate ids", zap.Int("dropped", dropped))
	}
	c.Log.Info("catalog loaded", zap.Int("products", c.Catalog.Len()))

	c.Screen.ClearError()
	c.Screen.RenderGrid(c.Catalog.Filter(c.query))
	return nil
}

func (c *Controller) Search(text string) {
	c.query = text
	c.Screen.RenderGrid(c.Catalog.Filter(text))
}

func (c *Controller) Query() string { return c.query }

func (c *Controller) ViewDetails(id int64) bool {
	p, ok := c.Catalog.FindByID(id)
	if !ok {
		c.Log.Debug("view details: unknown product", zap.Int64("id", id))
		return false
	}
	c.Screen.RenderDetail(p)
	return true
}

// AddToCart returns the notice to dismiss later, or false when id is not in
// the catalog.
func (c *Controller) AddToCart(id int64) (Notice, bool) {
	p, ok := c.Catalog.FindByID(id)
	if !ok {
		c.Log.Debug("add to cart: unknown product", zap.Int64("id", id))
		return Notice{}, false
	}

	line := c.Cart.Add(p)
	c.Screen.UpdateCartBadge(c.Cart.TotalItemCount())
	c.Log.Debug("added to cart", zap.Int64("id", id), zap.Int("quantity", line.Quantity))

	return c.Screen.NotifyAdded(p), true
}

func (c *Controller) CloseDetail() {
	c.Screen.CloseDetail()
}

// BackdropClick closes the modal unless the click landed on its content.
func (c *Controller) BackdropClick(insideContent bool) {
	if insideContent {
		return
	}
	c.Screen.CloseDetail()
}

// OpenRemote fetches a single product from the catalog API and opens it in
// the detail view, bypassing the loaded catalog.
func (c *Controller) OpenRemote(ctx context.Context, id int64) error {
	p, err := c.Client.FetchOne(ctx, id)
	if err != nil {
		c.Log.Warn("fetch product failed", zap.Int64("id", id), zap.Error(err))
		c.Screen.ShowError(fmt.Sprintf("Product %d is not available.", id))
		return err
	}
	c.Screen.ClearError()
	c.Screen.RenderDetail(p)
	return nil
}
