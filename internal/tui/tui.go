// Package tui implements the interactive purchase browser of the terminal
// client on top of bubbletea.
package tui

import (
	"context"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

// New returns a browser over server. The caller attaches the session token
// to server before calling Browse.
func New(server adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{server: server, logger: logger}
}

// Browse runs the purchase browser until the user quits or ctx is done.
func (t *TUI) Browse(ctx context.Context, filter models.PurchaseFilter) error {
	model := newBrowserModel(ctx, t.server, filter)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Error().Err(err).Msg("purchase browser stopped")
	}

	return err
}
