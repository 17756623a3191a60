package storefront

import (
	"fmt"
	"time"
)

// NoticeDelay is how long an "added to cart" notice stays up.
const NoticeDelay = 2 * time.Second

type Card struct {
	ProductID int64
	Image     string
	Name      string
	Category  string
	Price     string
}

type Detail struct {
	ProductID   int64
	Image       string
	Name        string
	Category    string
	Price       string
	InStock     string
	Added       string
	Description string
	Tags        string
}

type Notice struct {
	ID    uint64
	Text  string
	Delay time.Duration
}

// Screen is the rendered state of the storefront: the grid, the detail
// modal, the cart badge, the transient notice and the error banner. Every
// render call replaces its region outright. Screen belongs to the event
// loop and is not safe for concurrent use.
type Screen struct {
	dateLayout string
	loc        *time.Location

	cards []Card

	detail    Detail
	modalOpen bool

	badge int

	notice    Notice
	hasNotice bool
	noticeSeq uint64

	banner string
}

type ScreenOption func(*Screen)

func WithDateLayout(layout string) ScreenOption {
	return func(s *Screen) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

func WithLocation(loc *time.Location) ScreenOption {
	return func(s *Screen) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewScreen(opts ...ScreenOption) *Screen {
	s := &Screen{
		dateLayout: DefaultDateLayout,
		loc:        time.Local,
		cards:      []Card{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func CardFor(p Product) Card {
	return Card{
		ProductID: p.ID,
		Image:     ImageFor(p.Category),
		Name:      p.Name,
		Category:  p.Category,
		Price:     FormatPrice(p.Price),
	}
}

func (s *Screen) DetailFor(p Product) Detail {
	return Detail{
		ProductID:   p.ID,
		Image:       ImageFor(p.Category),
		Name:        p.Name,
		Category:    p.Category,
		Price:       FormatPrice(p.Price),
		InStock:     StockLabel(p.InStock),
		Added:       FormatDate(p.CreatedAt, s.dateLayout, s.loc),
		Description: p.Description,
		Tags:        FormatTags(p.Tags),
	}
}

// RenderGrid draws one card per product in the given order, discarding
// whatever the grid showed before.
func (s *Screen) RenderGrid(products []Product) {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, CardFor(p))
	}
	s.cards = cards
}

func (s *Screen) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *Screen) RenderDetail(p Product) {
	s.detail = s.DetailFor(p)
	s.modalOpen = true
}

func (s *Screen) CloseDetail() {
	s.modalOpen = false
}

func (s *Screen) ModalOpen() bool { return s.modalOpen }

// Detail returns the modal content and whether the modal is visible.
func (s *Screen) Detail() (Detail, bool) {
	return s.detail, s.modalOpen
}

// NotifyAdded shows an acknowledgment for p. The caller schedules
// DismissNotice with the returned id after Notice.Delay.
func (s *Screen) NotifyAdded(p Product) Notice {
	s.noticeSeq++
	s.notice = Notice{
		ID:    s.noticeSeq,
		Text:  fmt.Sprintf("%s added to cart!", p.Name),
		Delay: NoticeDelay,
	}
	s.hasNotice = true
	return s.notice
}

// DismissNotice hides notice id unless a newer notice replaced it.
func (s *Screen) DismissNotice(id uint64) bool {
	if !s.hasNotice || s.notice.ID != id {
		return false
	}
	s.hasNotice = false
	return true
}

func (s *Screen) Notice() (Notice, bool) {
	return s.notice, s.hasNotice
}

func (s *Screen) UpdateCartBadge(count int) {
	s.badge = count
}

func (s *Screen) Badge() int { return s.badge }

func (s *Screen) ShowError(msg string) { s.banner = msg }

func (s *Screen) ClearError() { s.banner = "" }

// Banner returns the inline error message, empty when there is none.
func (s *Screen) Banner() string { return s.banner }
