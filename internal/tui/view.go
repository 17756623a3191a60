package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"Storefront/internal/storefront"
)

const (
	cardWidth  = 32
	cardHeight = 8
	// border on both sides plus one column of spacing
	cardStride = cardWidth + 3
	modalWidth = 64

	chromeLines = 4
)

func (m Model) View() string {
	if m.ctrl.Screen.ModalOpen() {
		return m.viewModal()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if banner := m.ctrl.Screen.Banner(); banner != "" {
		b.WriteString(m.styles.Banner.Render(banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.ShortHelpView(m.keys.gridHelp())))
	return b.String()
}

func (m Model) viewHeader() string {
	left := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("Storefront"),
		"  ",
		m.search.View(),
	)

	right := m.styles.Badge.Render(fmt.Sprintf("Cart %d", m.ctrl.Screen.Badge()))
	if n, ok := m.ctrl.Screen.Notice(); ok {
		right = lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Notice.Render(n.Text), " ", right)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) viewGrid() string {
	cards := m.ctrl.Screen.Cards()
	if len(cards) == 0 {
		switch {
		case m.loading:
			return m.styles.Muted.Render("Loading products…")
		case m.ctrl.Catalog.Len() > 0:
			return m.styles.Muted.Render("No products match your search.")
		default:
			return ""
		}
	}

	cols := m.columns()
	first, last := m.visibleRows(len(cards), cols)

	rows := make([]string, 0, last-first)
	for r := first; r < last; r++ {
		start := r * cols
		end := min(start+cols, len(cards))

		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(cards[i], i == m.cursor && m.focus == focusGrid), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// visibleRows keeps the cursor's row on screen when the grid is taller than
// the terminal.
func (m Model) visibleRows(n, cols int) (first, last int) {
	total := (n + cols - 1) / cols
	if m.height <= 0 {
		return 0, total
	}

	fit := max(1, (m.height-chromeLines)/cardHeight)
	cursorRow := m.cursor / cols
	first = max(0, cursorRow-fit+1)
	return first, min(total, first+fit)
}

func (m Model) renderCard(c storefront.Card, focused bool) string {
	inner := cardWidth - 2
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render(truncate(c.Image, inner)),
		m.styles.Name.Render(truncate(c.Name, inner)),
		m.styles.Muted.Render(truncate(c.Category, inner)),
		m.styles.Price.Render(c.Price),
		m.styles.Action.Render("[enter] View Details"),
		m.styles.Action.Render("[a] Add to Cart"),
	)

	if focused {
		return m.styles.CardFocus.Render(body)
	}
	return m.styles.Card.Render(body)
}

func (m Model) viewModal() string {
	box := m.renderModal()
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(colorBorder),
	)
}

func (m Model) renderModal() string {
	d, _ := m.ctrl.Screen.Detail()

	field := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Left, m.styles.Label.Render(label), value)
	}
	half := (modalWidth - 6) / 2
	col := lipgloss.NewStyle().Width(half)

	facts := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			col.Render(field("Category", d.Category)),
			col.Render(field("Price", m.styles.Price.Render(d.Price))),
		),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			col.Render(field("In Stock", d.InStock)),
			col.Render(field("Added", d.Added)),
		),
	)

	parts := []string{
		m.styles.Muted.Render(truncate(d.Image, modalWidth-6)),
		"",
		m.styles.Title.Render(d.Name),
		"",
		facts,
		"",
		field("Description", d.Description),
		"",
		field("Tags", d.Tags),
		"",
		m.help.ShortHelpView(m.keys.modalHelp()),
	}
	if n, ok := m.ctrl.Screen.Notice(); ok {
		parts = append(parts, "", m.styles.Notice.Render(n.Text))
	}

	return m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// modalBounds mirrors the centering done by lipgloss.Place in viewModal.
func (m Model) modalBounds() rect {
	box := m.renderModal()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return rect{
		x: centerOffset(m.width, w),
		y: centerOffset(m.height, h),
		w: w,
		h: h,
	}
}

func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*float64(lipgloss.Center)))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// CardTable renders cards as a plain table for non-interactive output.
func CardTable(cards []storefront.Card) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CATEGORY", "PRICE")
	for _, c := range cards {
		t.Row(fmt.Sprint(c.ProductID), c.Name, c.Category, c.Price)
	}
	return t.String()
}

// DetailText renders the detail view outside the interactive program.
func DetailText(d storefront.Detail) string {
	s := DefaultStyles()
	rows := [][2]string{
		{"Name", d.Name},
		{"Category", d.Category},
		{"Price", d.Price},
		{"In Stock", d.InStock},
		{"Added", d.Added},
		{"Description", d.Description},
		{"Tags", d.Tags},
		{"Image", d.Image},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, s.Label.Width(12).Render(r[0])+r[1])
	}
	return strings.Join(lines, "\n")
}
