package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/spf13/cobra"
)

func (a *App) newCurrenciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the known country/currency pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			pairs, err := a.services.Server.GetCountryCurrencies(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cmd, pairs, func(w *tableWriter) {
				w.row("COUNTRY", "CURRENCY")
				for _, p := range pairs {
					w.row(p.Country, p.Currency)
				}
			})
		},
	}
}

// rateView is the JSON shape of the rate command.
type rateView struct {
	models.ExchangeRate
	Amount    string `json:"amount,omitempty"`
	Converted string `json:"converted,omitempty"`
}

func (a *App) newRateCommand() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "rate <country> <currency> [date]",
		Short: "Show the exchange rate in effect on a date",
		Long: `rate prints the most recent exchange rate recorded on or before date
(today when omitted). With --amount the amount is converted at that rate.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := models.NewDate(time.Now())
			if len(args) == 3 {
				parsed, err := models.ParseDate(args[2])
				if err != nil {
					return err
				}
				date = parsed
			}

			toConvert, err := optionalDecimal("amount", amount)
			if err != nil {
				return err
			}

			if _, err = a.requireSession(cmd.Context()); err != nil {
				return err
			}

			rate, err := a.services.Server.GetExchangeRate(cmd.Context(), args[0], args[1], date)
			if err != nil {
				return err
			}

			view := rateView{ExchangeRate: rate}
			if toConvert != nil {
				view.Amount = toConvert.StringFixed(models.PurchaseAmountScale)
				view.Converted = rate.Convert(*toConvert).StringFixed(models.PurchaseAmountScale)
			}

			return a.print(cmd, view, func(w *tableWriter) {
				w.row("Country", rate.Country)
				w.row("Currency", rate.Currency)
				w.row("Rate", rate.ExchangeRate.String())
				w.row("Record date", rate.RecordDate.String())
				w.row("Effective date", rate.EffectiveDate.String())
				if toConvert != nil {
					w.row("Converted", fmt.Sprintf("%s USD = %s %s", view.Amount, view.Converted, rate.Currency))
				}
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "USD amount to convert")

	return cmd
}

func (a *App) newSyncStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-status",
		Short: "Show the state of the server's currency sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			status, err := a.services.Server.GetSyncStatus(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cmd, status, func(w *tableWriter) {
				w.row("State", string(status.State))
				w.row("Attempt", fmt.Sprintf("%d/%d", status.Attempt, status.MaxAttempts))
				if status.LastError != "" {
					w.row("Last error", status.LastError)
				}
				if status.Result != nil {
					w.row("Fetched", strconv.Itoa(status.Result.Fetched))
					w.row("Inserted", strconv.Itoa(status.Result.Inserted))
					w.row("Deleted", strconv.Itoa(status.Result.Deleted))
				}
				if status.FinishedAt != nil {
					w.row("Finished at", formatTime(*status.FinishedAt))
				}
			})
		},
	}
}

// versionView pairs the client build with the server's answer.
type versionView struct {
	Client models.VersionResponse  `json:"client"`
	Server *models.VersionResponse `json:"server,omitempty"`
}

func (a *App) newVersionCommand() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := versionView{Client: a.build.VersionResponse()}

			if !offline {
				server, err := a.services.Server.GetVersion(cmd.Context())
				if err != nil {
					return err
				}
				view.Server = &server
			}

			return a.print(cmd, view, func(w *tableWriter) {
				w.row("Client", versionLine(view.Client))
				if view.Server != nil {
					w.row("Server", versionLine(*view.Server))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "do not ask the server")

	return cmd
}

func versionLine(v models.VersionResponse) string {
	version := v.Version
	if version == "" {
		version = models.BuildValueUnknown
	}
	parts := []string{version}
	if v.BuildDate != "" {
		parts = append(parts, v.BuildDate)
	}
	if v.BuildCommit != "" {
		parts = append(parts, v.BuildCommit)
	}
	return strings.Join(parts, " ")
}
