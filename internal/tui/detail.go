package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

type detailModel struct {
	purchase models.Purchase
	// rate is the last conversion made for this purchase.
	rate *models.ExchangeRate
}

func (m detailModel) View() string {
	p := m.purchase

	var b strings.Builder
	field(&b, "ID", strconv.FormatInt(p.ID, 10))
	field(&b, "Description", p.Description)
	field(&b, "Date", p.TransactionDatetimeUTC.UTC().Format("2006-01-02 15:04:05 MST"))
	field(&b, "Amount", p.PurchaseAmount.StringFixed(models.PurchaseAmountScale)+" USD")
	field(&b, "Transaction", p.TransactionIdentifier)

	if m.rate != nil {
		b.WriteString("\n")
		field(&b, "Converted", fmt.Sprintf("%s %s (%s)",
			m.rate.Convert(p.PurchaseAmount).StringFixed(models.PurchaseAmountScale),
			m.rate.Currency,
			m.rate.Country,
		))
		field(&b, "Rate", fmt.Sprintf("%s, effective %s", m.rate.ExchangeRate.String(), m.rate.EffectiveDate))
	}

	return renderPage(titleStyle.Render(fitText(p.Description, 50)), b.String(), "x convert  c copy id  d delete  esc back")
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(value)
	b.WriteString("\n")
}
