package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// ProductPredicate is a boolean test over a product, composed from a
// search request by CompileFilters.
type ProductPredicate func(*models.Product) bool

// ProductRepository is the search engine's sole collaborator. Either a
// database-backed or an in-memory implementation satisfies it; the
// engine's behavior is identical against both.
type ProductRepository interface {
	FindActiveMatching(ctx context.Context, match ProductPredicate) ([]models.Product, error)
}

// ─────────────────────────────────────────────────────────────
// GORM-backed repository
// ─────────────────────────────────────────────────────────────

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindActiveMatching loads active products with their category preloaded
// and applies the predicate in memory. The active restriction is pushed
// down to SQL; the predicate re-checks it, which is harmless.
func (r *GormProductRepository) FindActiveMatching(ctx context.Context, match ProductPredicate) ([]models.Product, error) {
	rows := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Preload("Category").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0, len(rows))
	for i := range rows {
		if match == nil || match(&rows[i]) {
			matched = append(matched, rows[i])
		}
	}
	return matched, nil
}

// ─────────────────────────────────────────────────────────────
// In-memory repository
// ─────────────────────────────────────────────────────────────

// MemoryProductRepository serves searches from a fixed product slice.
// Reads take a snapshot, so concurrent searches never observe a
// half-applied replacement.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProductRepository(products []models.Product) *MemoryProductRepository {
	return &MemoryProductRepository{products: products}
}

// Replace swaps the backing product set.
func (r *MemoryProductRepository) Replace(products []models.Product) {
	r.mu.Lock()
	r.products = products
	r.mu.Unlock()
}

func (r *MemoryProductRepository) FindActiveMatching(ctx context.Context, match ProductPredicate) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		if !p.Active {
			continue
		}
		if match == nil || match(&p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
