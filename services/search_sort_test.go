package services

import (
	"testing"
	"time"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

func sortFixture() []models.Product {
	a := cardAt("a", testEpoch.Add(2*time.Hour))
	a.NameEn = "Blastoise"
	a.PriceUsd, a.PriceJpy = 30, 100
	a.StockQuantity = 5

	b := cardAt("b", testEpoch.Add(1*time.Hour))
	b.NameEn = "Alakazam"
	b.PriceUsd, b.PriceJpy = 10, 300
	b.StockQuantity = 2

	c := cardAt("c", testEpoch.Add(3*time.Hour))
	c.NameEn = "Charizard"
	c.PriceUsd, c.PriceJpy = 20, 200
	c.StockQuantity = 9

	return []models.Product{a, b, c}
}

func TestSortProductsKeys(t *testing.T) {
	cases := []struct {
		key      models.SortKey
		currency models.Currency
		want     []string
	}{
		{models.SortNameAsc, models.CurrencyUSD, []string{"b", "a", "c"}},
		{models.SortNameDesc, models.CurrencyUSD, []string{"c", "a", "b"}},
		{models.SortPriceAsc, models.CurrencyUSD, []string{"b", "c", "a"}},
		{models.SortPriceDesc, models.CurrencyUSD, []string{"a", "c", "b"}},
		{models.SortPriceAsc, models.CurrencyJPY, []string{"a", "c", "b"}},
		{models.SortPriceDesc, models.CurrencyJPY, []string{"b", "c", "a"}},
		{models.SortNewest, models.CurrencyUSD, []string{"c", "a", "b"}},
		{models.SortOldest, models.CurrencyUSD, []string{"b", "a", "c"}},
		{models.SortStockAsc, models.CurrencyUSD, []string{"b", "a", "c"}},
		{models.SortStockDesc, models.CurrencyUSD, []string{"c", "a", "b"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.key)+"/"+string(tc.currency), func(t *testing.T) {
			products := sortFixture()
			SortProducts(products, tc.key, tc.currency)
			if got := skus(products); !equalSKUs(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSortProductsUnknownKeyFallsBackToNewest(t *testing.T) {
	products := sortFixture()
	SortProducts(products, models.SortKey("popularity"), models.CurrencyUSD)
	if got := skus(products); !equalSKUs(got, []string{"c", "a", "b"}) {
		t.Errorf("unknown key must sort newest-first, got %v", got)
	}
}

func TestSortProductsStable(t *testing.T) {
	// Same price everywhere: incoming order must survive.
	products := []models.Product{pricedCard("x", 10, 10), pricedCard("y", 10, 10), pricedCard("z", 10, 10)}
	SortProducts(products, models.SortPriceAsc, models.CurrencyUSD)
	if got := skus(products); !equalSKUs(got, []string{"x", "y", "z"}) {
		t.Errorf("equal keys must keep incoming order, got %v", got)
	}
}
