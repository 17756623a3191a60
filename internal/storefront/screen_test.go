package storefront_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/internal/storefront"
)

func TestScreen_RenderGridReplacesPreviousCards(t *testing.T) {
	s := storefront.NewScreen()
	all := sampleCatalog()

	s.RenderGrid(all[:2])
	require.Len(t, s.Cards(), 2)

	s.RenderGrid(nil)
	assert.Empty(t, s.Cards())

	s.RenderGrid(all[2:])
	cards := s.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, []int64{3, 4, 5}, []int64{cards[0].ProductID, cards[1].ProductID, cards[2].ProductID})
}

func TestScreen_CardFields(t *testing.T) {
	card := storefront.CardFor(sampleCatalog()[0])

	assert.Equal(t, int64(1), card.ProductID)
	assert.Equal(t, "Widget", card.Name)
	assert.Equal(t, "Electronics", card.Category)
	assert.Equal(t, "$20.00", card.Price)
	assert.Equal(t, storefront.ImageFor("Electronics"), card.Image)

	mystery := storefront.CardFor(sampleCatalog()[3])
	assert.Equal(t, storefront.DefaultImage, mystery.Image)
}

func TestScreen_RenderDetailOpensModal(t *testing.T) {
	s := storefront.NewScreen(storefront.WithLocation(time.UTC))
	require.False(t, s.ModalOpen())

	s.RenderDetail(sampleCatalog()[0])

	d, open := s.Detail()
	require.True(t, open)
	assert.Equal(t, storefront.Detail{
		ProductID:   1,
		Image:       storefront.ImageFor("Electronics"),
		Name:        "Widget",
		Category:    "Electronics",
		Price:       "$20.00",
		InStock:     "Yes",
		Added:       "3/5/2024",
		Description: "A very useful widget.",
		Tags:        "gadget, tools",
	}, d)

	s.CloseDetail()
	assert.False(t, s.ModalOpen())
}

func TestScreen_DetailPlaceholders(t *testing.T) {
	s := storefront.NewScreen(storefront.WithDateLayout(time.DateOnly))
	p := product(9, "Bare", "Gifts", "3")
	p.InStock = false

	d := s.DetailFor(p)
	assert.Equal(t, "No", d.InStock)
	assert.Equal(t, storefront.Placeholder, d.Added)
	assert.Equal(t, storefront.Placeholder, d.Tags)
	assert.Equal(t, storefront.DefaultImage, d.Image)
}

func TestScreen_NoticeDismissal(t *testing.T) {
	s := storefront.NewScreen()
	_, shown := s.Notice()
	require.False(t, shown)

	first := s.NotifyAdded(product(1, "Widget", "Electronics", "1"))
	assert.Equal(t, "Widget added to cart!", first.Text)
	assert.Equal(t, storefront.NoticeDelay, first.Delay)

	second := s.NotifyAdded(product(2, "Toaster", "Appliances", "1"))
	require.NotEqual(t, first.ID, second.ID)

	// the first timer firing must not hide the newer notice
	assert.False(t, s.DismissNotice(first.ID))
	n, shown := s.Notice()
	require.True(t, shown)
	assert.Equal(t, "Toaster added to cart!", n.Text)

	assert.True(t, s.DismissNotice(second.ID))
	_, shown = s.Notice()
	assert.False(t, shown)
	assert.False(t, s.DismissNotice(second.ID))
}

func TestScreen_BadgeAndBanner(t *testing.T) {
	s := storefront.NewScreen()
	assert.Equal(t, 0, s.Badge())
	s.UpdateCartBadge(3)
	assert.Equal(t, 3, s.Badge())

	assert.Empty(t, s.Banner())
	s.ShowError("down")
	assert.Equal(t, "down", s.Banner())
	s.ClearError()
	assert.Empty(t, s.Banner())
}
