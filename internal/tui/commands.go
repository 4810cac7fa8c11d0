package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

func cmdLoadPage(ctx context.Context, server adapter.ServerAdapter, filter models.PurchaseFilter) tea.Cmd {
	return func() tea.Msg {
		page, err := server.ListPurchases(ctx, filter)
		return pageLoadedMsg{page: page, err: err}
	}
}

func cmdDeletePurchase(ctx context.Context, server adapter.ServerAdapter, id int64) tea.Cmd {
	return func() tea.Msg {
		return purchaseDeletedMsg{id: id, err: server.DeletePurchase(ctx, id)}
	}
}

// cmdLoadRate looks up the rate in effect on the purchase date.
func cmdLoadRate(ctx context.Context, server adapter.ServerAdapter, country, currency string, date time.Time) tea.Cmd {
	return func() tea.Msg {
		rate, err := server.GetExchangeRate(ctx, country, currency, models.NewDate(date))
		return rateLoadedMsg{rate: rate, err: err}
	}
}

func cmdCopyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
