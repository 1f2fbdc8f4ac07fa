package services

import (
	"testing"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

func TestCompileFiltersEmptyRequestMatchesActiveOnly(t *testing.T) {
	match := CompileFilters(models.SearchFilters{})

	active := card("active-1")
	if !match(&active) {
		t.Error("empty request must match an active product")
	}

	inactive := card("inactive-1")
	inactive.Active = false
	if match(&inactive) {
		t.Error("empty request must not match an inactive product")
	}
}

func TestCompileFiltersFreeTextQuery(t *testing.T) {
	p := card("PSA-CHAR-001")
	p.NameEn = "Charizard Base Set"
	p.NameJa = str("リザードン")
	p.Description = "Shadowless holo"
	p.CardSet = str("Base Set")
	p.CardNumber = str("4/102")

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"name english", "charizard", true},
		{"name japanese", "リザードン", true},
		{"description", "shadowless", true},
		{"card set", "base set", true},
		{"card number", "4/102", true},
		{"sku", "psa-char", true},
		{"case insensitive", "CHARIZARD", true},
		{"no match", "pikachu", false},
		{"empty query matches", "", true},
		{"whitespace-only query matches", "   ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match := CompileFilters(models.SearchFilters{Query: tc.query})
			if got := match(&p); got != tc.want {
				t.Errorf("query %q: got %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestCompileFiltersCategorySlug(t *testing.T) {
	p := card("poke-1")
	p.Category = &models.Category{NameEn: "Pokemon", Slug: "pokemon"}

	if !CompileFilters(models.SearchFilters{Category: "pokemon"})(&p) {
		t.Error("matching slug should pass")
	}
	if CompileFilters(models.SearchFilters{Category: "one-piece"})(&p) {
		t.Error("non-matching slug should fail")
	}

	// Without a loaded category relation a category filter cannot match.
	orphan := card("orphan-1")
	if CompileFilters(models.SearchFilters{Category: "pokemon"})(&orphan) {
		t.Error("product without category should fail a category filter")
	}
}

func TestCompileFiltersGameTypeMembership(t *testing.T) {
	p := card("op-1")
	p.GameType = models.GameOnePiece

	// Empty selected-set means no restriction.
	if !CompileFilters(models.SearchFilters{GameTypes: nil})(&p) {
		t.Error("empty game-type set must not restrict")
	}
	if !CompileFilters(models.SearchFilters{GameTypes: []models.GameType{models.GameOnePiece, models.GamePokemon}})(&p) {
		t.Error("member of the set should pass")
	}
	if CompileFilters(models.SearchFilters{GameTypes: []models.GameType{models.GamePokemon}})(&p) {
		t.Error("non-member should fail")
	}
}

func TestCompileFiltersPriceRange(t *testing.T) {
	p := pricedCard("card-1", 25, 3800)

	cases := []struct {
		name    string
		filters models.SearchFilters
		want    bool
	}{
		{"usd within", models.SearchFilters{PriceMin: f64(20), PriceMax: f64(30), Currency: models.CurrencyUSD}, true},
		{"usd min only", models.SearchFilters{PriceMin: f64(25), Currency: models.CurrencyUSD}, true},
		{"usd below min", models.SearchFilters{PriceMin: f64(26), Currency: models.CurrencyUSD}, false},
		{"usd above max", models.SearchFilters{PriceMax: f64(24), Currency: models.CurrencyUSD}, false},
		{"jpy uses stored jpy price", models.SearchFilters{PriceMin: f64(3000), PriceMax: f64(4000), Currency: models.CurrencyJPY}, true},
		{"jpy not derived from usd", models.SearchFilters{PriceMax: f64(2500), Currency: models.CurrencyJPY}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompileFilters(tc.filters)(&p); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompileFiltersRarity(t *testing.T) {
	rare := card("rare-1")
	rare.Rarity = str("Secret Rare")

	unrated := card("unrated-1") // nil rarity

	filters := models.SearchFilters{Rarities: []string{"Secret Rare", "Ultra Rare"}}
	match := CompileFilters(filters)

	if !match(&rare) {
		t.Error("rarity in set should pass")
	}
	if match(&unrated) {
		t.Error("nil rarity cannot satisfy a rarity filter")
	}
	if !CompileFilters(models.SearchFilters{})(&unrated) {
		t.Error("nil rarity passes when no rarity filter is applied")
	}
}

func TestCompileFiltersCondition(t *testing.T) {
	p := card("mint-1")
	p.Condition = models.ConditionMint

	if !CompileFilters(models.SearchFilters{Conditions: []models.CardCondition{models.ConditionMint}})(&p) {
		t.Error("condition in set should pass")
	}
	if CompileFilters(models.SearchFilters{Conditions: []models.CardCondition{models.ConditionPoor}})(&p) {
		t.Error("condition not in set should fail")
	}
}

func TestCompileFiltersStockStatus(t *testing.T) {
	inStock := card("stocked-1")
	inStock.StockQuantity = 3

	soldOut := card("sold-1")
	soldOut.StockQuantity = 0

	inOnly := CompileFilters(models.SearchFilters{StockStatus: models.StockInStock})
	outOnly := CompileFilters(models.SearchFilters{StockStatus: models.StockOutOfStock})
	all := CompileFilters(models.SearchFilters{StockStatus: models.StockAll})

	if !inOnly(&inStock) || inOnly(&soldOut) {
		t.Error("in_stock must pass only quantity > 0")
	}
	if outOnly(&inStock) || !outOnly(&soldOut) {
		t.Error("out_of_stock must pass only quantity <= 0")
	}
	if !all(&inStock) || !all(&soldOut) {
		t.Error("all must not restrict by stock")
	}
}
