package services

import (
	"sort"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// AggregateFacets computes facet counts and price bounds over the
// filtered-but-unpaginated set. Each facet is counted against the same
// filtered set, not a per-dimension-relaxed one; a facet count answers
// "if you also narrowed to this value, how many would remain". Products
// without a rarity contribute no rarity option. An empty set yields
// zero price bounds.
func AggregateFacets(filtered []models.Product) models.AvailableFilters {
	gameTypes := make(map[string]int)
	rarities := make(map[string]int)
	conditions := make(map[string]int)

	var bounds models.PriceBounds
	for i := range filtered {
		p := &filtered[i]

		gameTypes[string(p.GameType)]++
		if p.Rarity != nil && *p.Rarity != "" {
			rarities[*p.Rarity]++
		}
		conditions[string(p.Condition)]++

		if i == 0 {
			bounds.Min = models.PriceAmounts{Usd: p.PriceUsd, Jpy: p.PriceJpy}
			bounds.Max = bounds.Min
			continue
		}
		if p.PriceUsd < bounds.Min.Usd {
			bounds.Min.Usd = p.PriceUsd
		}
		if p.PriceUsd > bounds.Max.Usd {
			bounds.Max.Usd = p.PriceUsd
		}
		if p.PriceJpy < bounds.Min.Jpy {
			bounds.Min.Jpy = p.PriceJpy
		}
		if p.PriceJpy > bounds.Max.Jpy {
			bounds.Max.Jpy = p.PriceJpy
		}
	}

	return models.AvailableFilters{
		GameTypes:  facetOptions(gameTypes),
		Rarities:   facetOptions(rarities),
		Conditions: facetOptions(conditions),
		PriceRange: bounds,
	}
}

// facetOptions flattens a count map into options sorted by value so
// identical inputs always produce identical envelopes.
func facetOptions(counts map[string]int) []models.FacetOption {
	options := make([]models.FacetOption, 0, len(counts))
	for value, count := range counts {
		options = append(options, models.FacetOption{Value: value, Count: count})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Value < options[j].Value
	})
	return options
}
