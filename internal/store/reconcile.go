package store

import "github.com/MKhiriev/go-purchase-tracker/models"

// BuildReconcilePlan compares the stored reference set with a freshly
// fetched one. Pairs are matched by (country, currency); IDs of fetched
// records are ignored. Duplicate fetched pairs collapse into one.
//
// Insert keeps the order of fetched, Delete keeps the order of stored.
func BuildReconcilePlan(stored, fetched []models.CountryCurrency) models.ReconcilePlan {
	storedKeys := make(map[models.CountryCurrencyKey]struct{}, len(stored))
	for _, pair := range stored {
		storedKeys[pair.Key()] = struct{}{}
	}

	var plan models.ReconcilePlan

	fetchedKeys := make(map[models.CountryCurrencyKey]struct{}, len(fetched))
	for _, pair := range fetched {
		key := pair.Key()
		if _, seen := fetchedKeys[key]; seen {
			continue
		}
		fetchedKeys[key] = struct{}{}

		if _, ok := storedKeys[key]; !ok {
			plan.Insert = append(plan.Insert, models.CountryCurrency{Country: pair.Country, Currency: pair.Currency})
		}
	}

	for _, pair := range stored {
		if _, ok := fetchedKeys[pair.Key()]; !ok {
			plan.Delete = append(plan.Delete, pair)
		}
	}

	return plan
}

// UniqueCountryCurrencies counts distinct pairs in fetched.
func UniqueCountryCurrencies(fetched []models.CountryCurrency) int {
	keys := make(map[models.CountryCurrencyKey]struct{}, len(fetched))
	for _, pair := range fetched {
		keys[pair.Key()] = struct{}{}
	}
	return len(keys)
}
