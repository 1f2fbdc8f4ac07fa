package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func strPtr(s string) *string { return &s }

type seedCategory struct {
	name      string
	slug      string
	sortOrder int
	subs      [][2]string // name, slug
}

type seedProduct struct {
	sku        string
	name       string
	category   string // parent category slug
	gameType   models.GameType
	cardSet    string
	cardNumber string
	rarity     string
	condition  models.CardCondition
	psaGrade   *float64
	priceJpy   float64
	stock      int
	featured   bool
	desc       string
}

var seedCategories = []seedCategory{
	{"Pokemon", "pokemon", 1, [][2]string{
		{"Base Set", "base-set"}, {"Gym Heroes", "gym-heroes"},
		{"Neo Genesis", "neo-genesis"}, {"Modern Sets", "modern-sets"},
	}},
	{"One Piece", "one-piece", 2, [][2]string{
		{"Romance Dawn", "romance-dawn"}, {"Paramount War", "paramount-war"},
		{"Pillars of Strength", "pillars-of-strength"},
	}},
	{"Dragon Ball", "dragon-ball", 3, [][2]string{
		{"Galactic Battle", "galactic-battle"}, {"Union Force", "union-force"},
		{"The Tournament of Power", "tournament-of-power"},
	}},
	{"Yu-Gi-Oh!", "yu-gi-oh", 4, [][2]string{
		{"Legend of Blue Eyes", "legend-of-blue-eyes"}, {"Metal Raiders", "metal-raiders"},
		{"Spell Ruler", "spell-ruler"},
	}},
	{"Digimon", "digimon", 5, [][2]string{
		{"Release Special", "release-special"}, {"Ultimate Power", "ultimate-power"},
		{"Union Impact", "union-impact"},
	}},
}

func grade(g float64) *float64 { return &g }

var seedProducts = []seedProduct{
	{"poke-001", "Charizard Base Set Shadowless", "pokemon", models.GamePokemon, "Base Set", "4/102", "Secret Rare", models.ConditionNearMint, nil, 2500, 3, true,
		"Iconic Charizard from the original Base Set, shadowless version in excellent condition."},
	{"poke-002", "Pikachu Illustrator Promo", "pokemon", models.GamePokemon, "Promo", "—", "Ultra Rare", models.ConditionMint, grade(9), 98000, 1, true,
		"One of the rarest Pokemon cards ever printed, PSA graded."},
	{"poke-003", "Blastoise Base Set Holo", "pokemon", models.GamePokemon, "Base Set", "2/102", "Rare", models.ConditionExcellent, nil, 800, 5, false,
		"Classic Blastoise holo from Base Set."},
	{"op-001", "Monkey D. Luffy Leader Parallel", "one-piece", models.GameOnePiece, "Romance Dawn", "OP01-001", "Super Rare", models.ConditionNearMint, nil, 4500, 2, true,
		"Parallel art Luffy leader card from Romance Dawn."},
	{"op-002", "Shanks Secret Rare", "one-piece", models.GameOnePiece, "Romance Dawn", "OP01-120", "Secret Rare", models.ConditionMint, grade(10), 32000, 1, false,
		"PSA 10 Shanks secret rare, the chase card of the set."},
	{"db-001", "Son Goku Ultra Instinct SPR", "dragon-ball", models.GameDragonBall, "Union Force", "BT2-035", "Super Rare", models.ConditionNearMint, nil, 1800, 4, false,
		"Ultra Instinct Goku special rare with alternate art."},
	{"ygo-001", "Blue-Eyes White Dragon LOB 1st", "yu-gi-oh", models.GameYugioh, "Legend of Blue Eyes", "LOB-001", "Ultra Rare", models.ConditionGood, nil, 15000, 2, true,
		"First edition Blue-Eyes White Dragon from Legend of Blue Eyes White Dragon."},
	{"ygo-002", "Dark Magician Metal Raiders", "yu-gi-oh", models.GameYugioh, "Metal Raiders", "MRD-000", "Rare", models.ConditionLightPlayed, nil, 600, 8, false,
		"Dark Magician reprint from Metal Raiders, light edge wear."},
	{"dig-001", "Omnimon Alternative Art", "digimon", models.GameDigimon, "Release Special", "BT1-084", "Secret Rare", models.ConditionNearMint, nil, 9800, 2, false,
		"Alternative art Omnimon from the release special booster."},
}

// main seeds the catalog with the sample categories and card products.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CARD SHOP - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()

	if err := config.ShopGorm.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	categoryIDs := make(map[string]uuid.UUID)
	for _, cat := range seedCategories {
		category := models.Category{
			NameEn:    cat.name,
			NameJa:    strPtr(cat.name),
			Slug:      cat.slug,
			SortOrder: cat.sortOrder,
		}
		if err := config.ShopGorm.
			Where(models.Category{Slug: cat.slug}).
			FirstOrCreate(&category).Error; err != nil {
			log.Fatalf("❌ Failed to seed category %s: %v", cat.slug, err)
		}
		categoryIDs[cat.slug] = category.ID
		fmt.Printf("📁 Category: %s\n", cat.name)

		for _, sub := range cat.subs {
			parentID := category.ID
			subCategory := models.Category{
				NameEn:   sub[0],
				Slug:     sub[1],
				ParentID: &parentID,
			}
			if err := config.ShopGorm.
				Where(models.Category{Slug: sub[1]}).
				FirstOrCreate(&subCategory).Error; err != nil {
				log.Fatalf("❌ Failed to seed subcategory %s: %v", sub[1], err)
			}
		}
	}

	for _, p := range seedProducts {
		product := models.Product{
			SKU:           p.sku,
			NameEn:        p.name,
			NameJa:        strPtr(p.name),
			Description:   p.desc,
			Images:        models.ImageList{fmt.Sprintf("https://cdn.cardshop.example/%s.jpg", p.sku)},
			CategoryID:    categoryIDs[p.category],
			GameType:      p.gameType,
			CardSet:       strPtr(p.cardSet),
			CardNumber:    strPtr(p.cardNumber),
			Rarity:        strPtr(p.rarity),
			Condition:     p.condition,
			PsaGrade:      p.psaGrade,
			PriceUsd:      p.priceJpy / 100, // fixed historical pricing, not live FX
			PriceJpy:      p.priceJpy,
			StockQuantity: p.stock,
			Featured:      p.featured,
			Active:        true,
		}
		if err := config.ShopGorm.
			Where(models.Product{SKU: p.sku}).
			FirstOrCreate(&product).Error; err != nil {
			log.Fatalf("❌ Failed to seed product %s: %v", p.sku, err)
		}
		fmt.Printf("🎴 Product: %s\n", p.name)
	}

	fmt.Println()
	fmt.Println("✅ Seed completed successfully!")
}
