package category_cache

import (
	"sync"
	"time"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

const TTL = 5 * time.Minute

// ── Storefront category tree cache ───────────────────────────────────────────
// Stores the assembled parent categories with children and product counts.
// Category data changes only through admin writes, so a short TTL plus
// explicit invalidation keeps the storefront listing cheap.

type treeEntry struct {
	tree      []models.CategoryWithCount
	fetchedAt time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func GetTree() ([]models.CategoryWithCount, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.tree, true
	}
	return nil, false
}

func SetTree(tree []models.CategoryWithCount) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{tree: tree, fetchedAt: time.Now()}
}

// ── Invalidate (call on any category or product create/update/delete) ────────

func Invalidate() {
	treeMu.Lock()
	treeCache = nil
	treeMu.Unlock()
}
