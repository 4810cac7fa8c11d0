package client

import (
	"github.com/MKhiriev/go-purchase-tracker/internal/tui"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/spf13/cobra"
)

func (a *App) newBrowseCommand() *cobra.Command {
	var (
		description string
		pageSize    int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse purchases interactively",
		Long: `browse opens a full screen purchase browser. Purchases can be paged
through, converted to another currency, copied and deleted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			filter := models.NewPurchaseFilter()
			filter.Description = description
			if pageSize > 0 {
				filter.PageSize = pageSize
			}

			return a.browse(cmd, filter)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "description contains")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "purchases per page")

	return cmd
}

func runBrowser(a *App, cmd *cobra.Command, filter models.PurchaseFilter) error {
	return tui.New(a.services.Server, a.logger).Browse(cmd.Context(), filter)
}
