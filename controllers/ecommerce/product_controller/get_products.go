package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve active products, newest first, with optional category slug, game type, and featured filters. For faceted search use /store/search.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category slug"
// @Param gameType query string false "Game type"
// @Param featured query string false "Only featured products when 'true'"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.ShopGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("active = ?", true)

	if slug := c.Query("category"); slug != "" {
		query = query.Where("category_id IN (SELECT id FROM categories WHERE slug = ?)", slug)
	}
	if raw := c.Query("gameType"); raw != "" {
		if gameType, ok := models.ParseGameType(raw); ok {
			query = query.Where("game_type = ?", gameType)
		}
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Category").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > models.MaxPageSize {
		limit = models.DefaultPageSize
	}

	return page, limit
}
