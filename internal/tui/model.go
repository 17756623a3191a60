package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"Storefront/internal/storefront"
)

type focus int

const (
	focusGrid focus = iota
	focusSearch
)

type catalogLoadedMsg struct {
	products []storefront.Product
	err      error
}

type noticeExpiredMsg struct {
	id uint64
}

// Model is the bubbletea program state. All controller calls happen inside
// Update, so the stores only ever see one goroutine.
type Model struct {
	ctx    context.Context
	ctrl   *storefront.Controller
	search textinput.Model
	help   help.Model
	keys   keyMap
	styles Styles

	focus   focus
	cursor  int
	loading bool

	width  int
	height int
}

func New(ctx context.Context, ctrl *storefront.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "Search products or categories"
	ti.Prompt = "Search: "
	ti.CharLimit = 120
	ti.Width = 40

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		search:  ti,
		help:    help.New(),
		keys:    defaultKeyMap(),
		styles:  DefaultStyles(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCatalog()
}

func (m Model) loadCatalog() tea.Cmd {
	ctx, client := m.ctx, m.ctrl.Client
	return func() tea.Msg {
		products, err := client.FetchAll(ctx)
		return catalogLoadedMsg{products: products, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		_ = m.ctrl.Loaded(msg.products, msg.err)
		m.clampCursor()
		return m, nil

	case noticeExpiredMsg:
		m.ctrl.Screen.DismissNotice(msg.id)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.ctrl.Screen.ModalOpen() {
		return m.handleModalKey(msg)
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.move(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.move(m.columns())
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.View):
		if card, ok := m.selected(); ok {
			m.ctrl.ViewDetails(card.ProductID)
		}
	case key.Matches(msg, m.keys.Add):
		if card, ok := m.selected(); ok {
			return m, m.addToCart(card.ProductID)
		}
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseDetail()
	case key.Matches(msg, m.keys.Add):
		d, _ := m.ctrl.Screen.Detail()
		return m, m.addToCart(d.ProductID)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.LeaveSearch) {
		m.focus = focusGrid
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if v := m.search.Value(); v != before {
		m.ctrl.Search(v)
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.ctrl.Screen.ModalOpen() {
		return m, nil
	}

	m.ctrl.BackdropClick(m.modalBounds().contains(msg.X, msg.Y))
	return m, nil
}

func (m Model) addToCart(id int64) tea.Cmd {
	n, ok := m.ctrl.AddToCart(id)
	if !ok {
		return nil
	}
	return tea.Tick(n.Delay, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: n.ID}
	})
}

func (m Model) selected() (storefront.Card, bool) {
	cards := m.ctrl.Screen.Cards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return storefront.Card{}, false
	}
	return cards[m.cursor], true
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.ctrl.Screen.Cards()) {
		return
	}
	m.cursor = next
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Screen.Cards())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) columns() int {
	cols := m.width / cardStride
	if cols < 1 {
		return 1
	}
	return cols
}
