package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

// GameType identifies the trading-card franchise a product belongs to.
type GameType string

const (
	GamePokemon      GameType = "POKEMON"
	GameOnePiece     GameType = "ONE_PIECE"
	GameDragonBall   GameType = "DRAGON_BALL"
	GameYugioh       GameType = "YUGIOH"
	GameMTG          GameType = "MTG"
	GameDigimon      GameType = "DIGIMON"
	GameWeissSchwarz GameType = "WEISS_SCHWARZ"
	GameOther        GameType = "OTHER"
)

// ParseGameType returns the matching GameType, or false for unknown values.
func ParseGameType(s string) (GameType, bool) {
	switch GameType(s) {
	case GamePokemon, GameOnePiece, GameDragonBall, GameYugioh,
		GameMTG, GameDigimon, GameWeissSchwarz, GameOther:
		return GameType(s), true
	}
	return "", false
}

// CardCondition grades card condition from best to worst.
type CardCondition string

const (
	ConditionMint        CardCondition = "MINT"
	ConditionNearMint    CardCondition = "NEAR_MINT"
	ConditionExcellent   CardCondition = "EXCELLENT"
	ConditionGood        CardCondition = "GOOD"
	ConditionLightPlayed CardCondition = "LIGHT_PLAYED"
	ConditionPlayed      CardCondition = "PLAYED"
	ConditionPoor        CardCondition = "POOR"
)

// ParseCardCondition returns the matching CardCondition, or false for unknown values.
func ParseCardCondition(s string) (CardCondition, bool) {
	switch CardCondition(s) {
	case ConditionMint, ConditionNearMint, ConditionExcellent, ConditionGood,
		ConditionLightPlayed, ConditionPlayed, ConditionPoor:
		return CardCondition(s), true
	}
	return "", false
}

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ImageList is stored as a JSONB array of image URLs.
type ImageList []string

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is a single catalog item. USD and JPY prices are stored
// independently and are never derived from one another at read time.
// Products are soft-deleted by flipping Active to false.
type Product struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	SKU           string        `json:"sku" gorm:"not null;uniqueIndex"`
	NameEn        string        `json:"nameEn" gorm:"not null;index"`
	NameJa        *string       `json:"nameJa,omitempty"`
	Description   string        `json:"description" gorm:"not null;default:''"`
	Images        ImageList     `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryID    uuid.UUID     `json:"categoryId" gorm:"type:uuid;not null;index:idx_products_category"`
	Category      *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	GameType      GameType      `json:"gameType" gorm:"type:varchar(20);not null;index"`
	CardSet       *string       `json:"cardSet,omitempty"`
	CardNumber    *string       `json:"cardNumber,omitempty"`
	Rarity        *string       `json:"rarity,omitempty" gorm:"index"`
	Condition     CardCondition `json:"condition" gorm:"type:varchar(20);not null"`
	PsaGrade      *float64      `json:"psaGrade,omitempty" gorm:"type:numeric(4,1)"`
	BgsGrade      *float64      `json:"bgsGrade,omitempty" gorm:"type:numeric(4,1)"`
	PriceUsd      float64       `json:"priceUsd" gorm:"type:numeric(12,2);not null;check:price_usd >= 0"`
	PriceJpy      float64       `json:"priceJpy" gorm:"type:numeric(12,0);not null;check:price_jpy >= 0"`
	StockQuantity int           `json:"stockQuantity" gorm:"not null;default:0;check:stock_quantity >= 0"`
	Featured      bool          `json:"featured" gorm:"not null;default:false"`
	Active        bool          `json:"active" gorm:"not null;default:true;index"`
	CreatedAt     time.Time     `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Price returns the stored price for the given currency.
func (p *Product) Price(currency Currency) float64 {
	if currency == CurrencyJPY {
		return p.PriceJpy
	}
	return p.PriceUsd
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	SKU           string   `json:"sku" binding:"required" example:"poke-001"`
	NameEn        string   `json:"nameEn" binding:"required" example:"Charizard Base Set Shadowless"`
	NameJa        *string  `json:"nameJa"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	CategoryID    string   `json:"categoryId" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	GameType      string   `json:"gameType" binding:"required,oneof=POKEMON ONE_PIECE DRAGON_BALL YUGIOH MTG DIGIMON WEISS_SCHWARZ OTHER"`
	CardSet       *string  `json:"cardSet"`
	CardNumber    *string  `json:"cardNumber"`
	Rarity        *string  `json:"rarity"`
	Condition     string   `json:"condition" binding:"required,oneof=MINT NEAR_MINT EXCELLENT GOOD LIGHT_PLAYED PLAYED POOR"`
	PsaGrade      *float64 `json:"psaGrade"`
	BgsGrade      *float64 `json:"bgsGrade"`
	PriceUsd      float64  `json:"priceUsd" binding:"min=0" example:"25.00"`
	PriceJpy      float64  `json:"priceJpy" binding:"min=0" example:"2500"`
	StockQuantity int      `json:"stockQuantity" binding:"min=0" example:"3"`
	Featured      bool     `json:"featured"`
}

type UpdateProductRequest struct {
	NameEn        *string  `json:"nameEn"`
	NameJa        *string  `json:"nameJa"`
	Description   *string  `json:"description"`
	Images        []string `json:"images"`
	CategoryID    *string  `json:"categoryId"`
	GameType      *string  `json:"gameType" binding:"omitempty,oneof=POKEMON ONE_PIECE DRAGON_BALL YUGIOH MTG DIGIMON WEISS_SCHWARZ OTHER"`
	CardSet       *string  `json:"cardSet"`
	CardNumber    *string  `json:"cardNumber"`
	Rarity        *string  `json:"rarity"`
	Condition     *string  `json:"condition" binding:"omitempty,oneof=MINT NEAR_MINT EXCELLENT GOOD LIGHT_PLAYED PLAYED POOR"`
	PsaGrade      *float64 `json:"psaGrade"`
	BgsGrade      *float64 `json:"bgsGrade"`
	PriceUsd      *float64 `json:"priceUsd" binding:"omitempty,min=0"`
	PriceJpy      *float64 `json:"priceJpy" binding:"omitempty,min=0"`
	StockQuantity *int     `json:"stockQuantity" binding:"omitempty,min=0"`
	Featured      *bool    `json:"featured"`
	Active        *bool    `json:"active"`
}
