package services

import (
	"sort"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// SortProducts orders products in place by the given key. The sort is
// stable: products comparing equal keep their incoming order. Price keys
// compare the currency-selected price field. Unknown keys fall back to
// newest-first without erroring.
func SortProducts(products []models.Product, key models.SortKey, currency models.Currency) {
	var less func(a, b *models.Product) bool

	switch key {
	case models.SortNameAsc:
		less = func(a, b *models.Product) bool { return a.NameEn < b.NameEn }
	case models.SortNameDesc:
		less = func(a, b *models.Product) bool { return a.NameEn > b.NameEn }
	case models.SortPriceAsc:
		less = func(a, b *models.Product) bool { return a.Price(currency) < b.Price(currency) }
	case models.SortPriceDesc:
		less = func(a, b *models.Product) bool { return a.Price(currency) > b.Price(currency) }
	case models.SortOldest:
		less = func(a, b *models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case models.SortStockAsc:
		less = func(a, b *models.Product) bool { return a.StockQuantity < b.StockQuantity }
	case models.SortStockDesc:
		less = func(a, b *models.Product) bool { return a.StockQuantity > b.StockQuantity }
	default: // newest, and any unrecognized key
		less = func(a, b *models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}
