package tui

import "github.com/MKhiriev/go-purchase-tracker/models"

type pageLoadedMsg struct {
	page models.PagedResult[models.Purchase]
	err  error
}

type purchaseDeletedMsg struct {
	id  int64
	err error
}

type rateLoadedMsg struct {
	rate models.ExchangeRate
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
