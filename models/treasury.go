package models

// TreasuryMeta is the pagination block of a treasury API response.
type TreasuryMeta struct {
	Count      int `json:"count"`
	TotalCount int `json:"total-count"`
	TotalPages int `json:"total-pages"`
}

// TreasuryPage is one page of a treasury API response.
type TreasuryPage[T any] struct {
	Data []T          `json:"data"`
	Meta TreasuryMeta `json:"meta"`
}
