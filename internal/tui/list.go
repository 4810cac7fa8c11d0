package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	filter  models.PurchaseFilter
	items   []models.Purchase
	count   int
	idx     int
	loading bool
	spinner spinner.Model
}

func newListModel(filter models.PurchaseFilter) listModel {
	if filter.PageSize <= 0 {
		filter.PageSize = models.DefaultPageSize
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return listModel{filter: filter, spinner: s, loading: true}
}

func (m listModel) current() (models.Purchase, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Purchase{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) hasPrev() bool {
	return m.filter.Start > 0
}

func (m listModel) hasNext() bool {
	return m.filter.Start+len(m.items) < m.count
}

// page moves the window by one page in direction dir (-1 or 1).
func (m listModel) page(dir int) listModel {
	start := m.filter.Start + dir*m.filter.PageSize
	if start < 0 {
		start = 0
	}

	m.filter.Start = start
	m.idx = 0
	m.loading = true

	return m
}

func (m listModel) loaded(page models.PagedResult[models.Purchase]) listModel {
	m.items = page.Items
	m.count = page.Count
	m.loading = false

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	return m
}

func (m listModel) View() string {
	header := titleStyle.Render("Purchases")
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No purchases")
	default:
		for i, p := range m.items {
			line := fmt.Sprintf("%-6d %s  %10s  %s",
				p.ID,
				p.TransactionDatetimeUTC.Format(models.DateLayout),
				p.PurchaseAmount.StringFixed(models.PurchaseAmountScale),
				fitText(p.Description, 40),
			)
			if i == m.idx {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	from := 0
	if len(m.items) > 0 {
		from = m.filter.Start + 1
	}
	footer := fmt.Sprintf("%d-%d of %d", from, m.filter.Start+len(m.items), m.count)

	return renderPage(header, b.String()+"\n"+footer, "enter open  ←/→ page  r reload  q quit")
}
