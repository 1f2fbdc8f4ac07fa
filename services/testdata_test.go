package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

var testEpoch = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// card returns an active product with sane defaults; tests tweak the
// fields they care about.
func card(sku string) models.Product {
	return models.Product{
		ID:            uuid.New(),
		SKU:           sku,
		NameEn:        sku,
		Description:   "",
		GameType:      models.GameOther,
		Condition:     models.ConditionNearMint,
		PriceUsd:      10,
		PriceJpy:      1000,
		StockQuantity: 1,
		Active:        true,
		CreatedAt:     testEpoch,
	}
}

func cardAt(sku string, createdAt time.Time) models.Product {
	p := card(sku)
	p.CreatedAt = createdAt
	return p
}

func pricedCard(sku string, usd, jpy float64) models.Product {
	p := card(sku)
	p.PriceUsd = usd
	p.PriceJpy = jpy
	return p
}

func str(s string) *string { return &s }

func f64(v float64) *float64 { return &v }

func skus(products []models.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].SKU
	}
	return out
}

func equalSKUs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
