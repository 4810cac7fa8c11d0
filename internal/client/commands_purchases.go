// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *App) newPurchasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "purchases",
		Aliases: []string{"purchase", "p"},
		Short:   "Manage purchases",
	}

	cmd.AddCommand(
		a.newPurchasesListCommand(),
		a.newPurchasesGetCommand(),
		a.newPurchasesCreateCommand(),
		a.newPurchasesUpdateCommand(),
		a.newPurchasesDeleteCommand(),
	)

	return cmd
}

func (a *App) newPurchasesListCommand() *cobra.Command {
	var (
		description        string
		from, to           string
		minAmount, maxAmount string
		start, pageSize    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchases matching the filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := models.NewPurchaseFilter()
			filter.Description = description
			filter.Start = start
			if pageSize > 0 {
				filter.PageSize = pageSize
			}

			var err error
			if filter.TransactionStartDate, err = optionalTime("from", from); err != nil {
				return err
			}
			if filter.TransactionEndDate, err = optionalTime("to", to); err != nil {
				return err
			}
			if filter.MinAmount, err = optionalDecimal("min", minAmount); err != nil {
				return err
			}
			if filter.MaxAmount, err = optionalDecimal("max", maxAmount); err != nil {
				return err
			}

			if _, err = a.requireSession(cmd.Context()); err != nil {
				return err
			}

			page, err := a.services.Server.ListPurchases(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return a.print(cmd, page, func(w *tableWriter) {
				w.row("ID", "DATE", "AMOUNT", "DESCRIPTION", "TRANSACTION")
				for _, p := range page.Items {
					w.row(purchaseRow(p)...)
				}
				w.row("")
				w.row(fmt.Sprintf("%d of %d", len(page.Items), page.Count))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&description, "description", "", "description contains")
	flags.StringVar(&from, "from", "", "transactions on or after (YYYY-MM-DD or RFC3339)")
	flags.StringVar(&to, "to", "", "transactions on or before (YYYY-MM-DD or RFC3339)")
	flags.StringVar(&minAmount, "min", "", "minimum amount")
	flags.StringVar(&maxAmount, "max", "", "maximum amount")
	flags.IntVar(&start, "start", 0, "number of purchases to skip")
	flags.IntVar(&pageSize, "page-size", models.DefaultPageSize, "purchases per page")

	return cmd
}

func (a *App) newPurchasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|transaction-identifier>",
		Short: "Show one purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			purchase, err := a.getPurchase(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.printPurchase(cmd, purchase)
		},
	}
}

func (a *App) getPurchase(ctx context.Context, key string) (models.Purchase, error) {
	if utils.IsUUID(key) {
		return a.services.Server.GetPurchaseByTransactionIdentifier(ctx, key)
	}

	id, err := parseID(key)
	if err != nil {
		return models.Purchase{}, err
	}

	return a.services.Server.GetPurchase(ctx, id)
}

// purchaseFlags are shared by create and update.
type purchaseFlags struct {
	description string
	amount      string
	date        string
}

func (f *purchaseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "description (up to 50 characters)")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "purchase amount in USD")
	cmd.Flags().StringVar(&f.date, "date", "", "transaction date (YYYY-MM-DD or RFC3339), defaults to now")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
}

func (f *purchaseFlags) input() (models.PurchaseInput, error) {
	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return models.PurchaseInput{}, fmt.Errorf("invalid --amount %q: %w", f.amount, err)
	}

	date := time.Now().UTC()
	if f.date != "" {
		if date, err = parseTime(f.date); err != nil {
			return models.PurchaseInput{}, fmt.Errorf("invalid --date: %w", err)
		}
	}

	return models.PurchaseInput{
		Description:        f.description,
		PurchaseAmount:     amount,
		TransactionDateUTC: date,
	}, nil
}

func (a *App) newPurchasesCreateCommand() *cobra.Command {
	var flags purchaseFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := flags.input()
			if err != nil {
				return err
			}

			if _, err = a.requireSession(cmd.Context()); err != nil {
				return err
			}

			created, err := a.services.Server.CreatePurchase(cmd.Context(), input)
			if err != nil {
				return err
			}

			return a.print(cmd, created, func(w *tableWriter) {
				w.row("Created purchase", strconv.FormatInt(created.ID, 10))
				w.row("Transaction", created.TransactionIdentifier)
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newPurchasesUpdateCommand() *cobra.Command {
	var flags purchaseFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input, err := flags.input()
			if err != nil {
				return err
			}

			if _, err = a.requireSession(cmd.Context()); err != nil {
				return err
			}

			updated, err := a.services.Server.UpdatePurchase(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			return a.printPurchase(cmd, updated)
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newPurchasesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if _, err = a.requireSession(cmd.Context()); err != nil {
				return err
			}

			if err = a.services.Server.DeletePurchase(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted purchase %d\n", id)
			return nil
		},
	}
}

func (a *App) printPurchase(cmd *cobra.Command, p models.Purchase) error {
	return a.print(cmd, p, func(w *tableWriter) {
		w.row("ID", strconv.FormatInt(p.ID, 10))
		w.row("Description", p.Description)
		w.row("Date", formatTime(p.TransactionDatetimeUTC))
		w.row("Amount", p.PurchaseAmount.StringFixed(models.PurchaseAmountScale))
		w.row("Transaction", p.TransactionIdentifier)
	})
}

func purchaseRow(p models.Purchase) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		formatTime(p.TransactionDatetimeUTC),
		p.PurchaseAmount.StringFixed(models.PurchaseAmountScale),
		p.Description,
		p.TransactionIdentifier,
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid purchase id %q", s)
	}
	return id, nil
}

// parseTime accepts RFC3339 timestamps and plain dates.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	d, err := models.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time, nil
}

func optionalTime(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := parseTime(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &t, nil
}

func optionalDecimal(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return &d, nil
}
