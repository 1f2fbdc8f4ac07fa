package services

import (
	"strings"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// CompileFilters translates a search request into a product predicate.
// The active check is always part of the predicate; every other clause
// is an additive restriction. A request with all fields empty compiles
// to the bare active-only predicate, matching the entire active catalog.
func CompileFilters(f models.SearchFilters) ProductPredicate {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	gameTypes := toSet(f.GameTypes)
	rarities := toSet(f.Rarities)
	conditions := toSet(f.Conditions)

	return func(p *models.Product) bool {
		if !p.Active {
			return false
		}
		if query != "" && !matchesQuery(p, query) {
			return false
		}
		if f.Category != "" {
			if p.Category == nil || p.Category.Slug != f.Category {
				return false
			}
		}
		// Empty selected-sets mean "no restriction", not "match nothing".
		if len(gameTypes) > 0 {
			if _, ok := gameTypes[p.GameType]; !ok {
				return false
			}
		}
		if f.PriceMin != nil && p.Price(f.Currency) < *f.PriceMin {
			return false
		}
		if f.PriceMax != nil && p.Price(f.Currency) > *f.PriceMax {
			return false
		}
		if len(rarities) > 0 {
			if p.Rarity == nil {
				return false
			}
			if _, ok := rarities[*p.Rarity]; !ok {
				return false
			}
		}
		if len(conditions) > 0 {
			if _, ok := conditions[p.Condition]; !ok {
				return false
			}
		}
		switch f.StockStatus {
		case models.StockInStock:
			if p.StockQuantity <= 0 {
				return false
			}
		case models.StockOutOfStock:
			if p.StockQuantity > 0 {
				return false
			}
		}
		return true
	}
}

// matchesQuery does a case-insensitive substring match across name (both
// locales), description, set label, card number, and SKU.
func matchesQuery(p *models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.NameEn), query) {
		return true
	}
	if p.NameJa != nil && strings.Contains(strings.ToLower(*p.NameJa), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	if p.CardSet != nil && strings.Contains(strings.ToLower(*p.CardSet), query) {
		return true
	}
	if p.CardNumber != nil && strings.Contains(strings.ToLower(*p.CardNumber), query) {
		return true
	}
	return strings.Contains(strings.ToLower(p.SKU), query)
}

func toSet[T comparable](values []T) map[T]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
