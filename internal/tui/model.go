package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenConvert
	screenConfirm
)

type browserModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	currentScreen screen
	list          listModel
	detail        detailModel
	convert       convertModel
	confirm       confirmModel

	// errOverlay is shown on top of the current screen until dismissed.
	errOverlay *errorOverlayModel
	status     string

	copyText func(string) error
}

func newBrowserModel(ctx context.Context, server adapter.ServerAdapter, filter models.PurchaseFilter) browserModel {
	return browserModel{
		ctx:      ctx,
		server:   server,
		list:     newListModel(filter),
		copyText: clipboard.WriteAll,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.loadPage())
}

func (m browserModel) loadPage() tea.Cmd {
	return cmdLoadPage(m.ctx, m.server, m.list.filter)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		if msg.err != nil {
			m.list.loading = false
			return m.showError(msg.err), nil
		}
		m.list = m.list.loaded(msg.page)
		return m, nil

	case purchaseDeletedMsg:
		if msg.err != nil {
			m.currentScreen = screenDetail
			return m.showError(msg.err), nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.status = fmt.Sprintf("Purchase %d deleted", msg.id)
		return m, tea.Batch(m.loadPage(), cmdClearStatus())

	case rateLoadedMsg:
		m.convert.loading = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		rate := msg.rate
		m.detail.rate = &rate
		m.currentScreen = screenDetail
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.status = "Transaction identifier copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.currentScreen == screenConvert {
		var cmd tea.Cmd
		m.convert, cmd = m.convert.update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return m, tea.Quit
	}

	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenConvert:
		return m.handleConvertKey(msg)
	case screenConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m browserModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.prev):
		if m.list.hasPrev() && !m.list.loading {
			m.list = m.list.page(-1)
			return m, m.loadPage()
		}
	case key.Matches(msg, keys.next):
		if m.list.hasNext() && !m.list.loading {
			m.list = m.list.page(1)
			return m, m.loadPage()
		}
	case key.Matches(msg, keys.reload):
		m.list.loading = true
		return m, m.loadPage()
	case key.Matches(msg, keys.enter):
		if p, ok := m.list.current(); ok {
			m.detail = detailModel{purchase: p}
			m.currentScreen = screenDetail
		}
	}

	return m, nil
}

func (m browserModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.copyText, m.detail.purchase.TransactionIdentifier)
	case key.Matches(msg, keys.delete):
		m.confirm = confirmModel{id: m.detail.purchase.ID, description: m.detail.purchase.Description}
		m.currentScreen = screenConfirm
	case key.Matches(msg, keys.convert):
		m.convert = newConvertModel()
		m.currentScreen = screenConvert
		return m, nil
	}

	return m, nil
}

func (m browserModel) handleConvertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenDetail
		return m, nil
	case key.Matches(msg, keys.tab):
		m.convert = m.convert.nextField()
		return m, nil
	case key.Matches(msg, keys.enter):
		if !m.convert.ready() || m.convert.loading {
			return m, nil
		}
		m.convert.loading = true
		return m, cmdLoadRate(m.ctx, m.server, m.convert.country(), m.convert.currency(), m.detail.purchase.TransactionDatetimeUTC)
	}

	var cmd tea.Cmd
	m.convert, cmd = m.convert.update(msg)
	return m, cmd
}

func (m browserModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, cmdDeletePurchase(m.ctx, m.server, m.confirm.id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.currentScreen = screenDetail
	}

	return m, nil
}

func (m browserModel) showError(err error) browserModel {
	m.errOverlay = &errorOverlayModel{message: err.Error()}
	return m
}

func (m browserModel) View() string {
	var body string
	switch m.currentScreen {
	case screenDetail:
		body = m.detail.View()
	case screenConvert:
		body = m.convert.View()
	case screenConfirm:
		body = m.detail.View() + "\n\n" + m.confirm.View()
	default:
		body = m.list.View()
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errOverlay != nil {
		body += "\n\n" + m.errOverlay.View()
	}

	return appStyle.Render(body)
}
