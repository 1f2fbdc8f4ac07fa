package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/cache/category_cache"
	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// GetCategories godoc
// @Summary List storefront categories
// @Description Top-level categories with nested subcategories and active-product counts, ordered by sort order. Served from a short-lived in-process cache.
// @Tags Storefront - Categories
// @Produce json
// @Param parentOnly query string false "Omit nested subcategories when 'true'"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	parentOnly := c.Query("parentOnly") == "true"

	tree, ok := category_cache.GetTree()
	if !ok {
		var err error
		tree, err = buildCategoryTree()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
			return
		}
		category_cache.SetTree(tree)
	}

	if parentOnly {
		parents := make([]models.CategoryWithCount, len(tree))
		for i, parent := range tree {
			parent.Subcats = nil
			parents[i] = parent
		}
		tree = parents
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}

// buildCategoryTree fetches all categories and active-product counts,
// then assembles parents with nested children.
func buildCategoryTree() ([]models.CategoryWithCount, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := make([]models.Category, 0)
	if err := config.ShopGorm.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	var countRows []struct {
		CategoryID string `gorm:"column:category_id"`
		Count      int    `gorm:"column:count"`
	}
	if err := config.ShopGorm.WithContext(ctx).Raw(`
		SELECT category_id::text AS category_id, COUNT(*)::int AS count
		FROM products
		WHERE active = true
		GROUP BY category_id
	`).Scan(&countRows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(countRows))
	for _, row := range countRows {
		counts[row.CategoryID] = row.Count
	}

	return assembleCategoryTree(categories, counts), nil
}

// assembleCategoryTree nests subcategories under their parents, preserving
// the input order, and attaches the active-product count for each node.
// Categories with a missing count get zero.
func assembleCategoryTree(categories []models.Category, counts map[string]int) []models.CategoryWithCount {
	children := make(map[string][]models.CategoryWithCount)
	parents := make([]models.CategoryWithCount, 0)
	for _, cat := range categories {
		node := models.CategoryWithCount{
			Category:     cat,
			ProductCount: counts[cat.ID.String()],
		}
		if cat.ParentID != nil {
			children[cat.ParentID.String()] = append(children[cat.ParentID.String()], node)
		} else {
			parents = append(parents, node)
		}
	}

	for i := range parents {
		parents[i].Subcats = children[parents[i].ID.String()]
	}
	return parents
}
