package search_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
	"github.com/rikimaru63/cardshop-hp-miyabi/services"
)

// SearchProducts godoc
// @Summary Search the catalog with faceted filters
// @Description Full catalog search: free-text query, category slug, game types, price range (per currency), rarities, conditions, stock status, sorting, and pagination. The response includes facet counts over the filtered set for the filter sidebar.
// @Tags Storefront - Search
// @Produce json
// @Param query query string false "Free-text query (name, description, set, card number, SKU)"
// @Param category query string false "Category slug"
// @Param gameTypes query string false "Comma-separated game types"
// @Param priceMin query number false "Minimum price in the selected currency"
// @Param priceMax query number false "Maximum price in the selected currency"
// @Param rarities query string false "Comma-separated rarity labels"
// @Param conditions query string false "Comma-separated condition grades"
// @Param stockStatus query string false "Stock filter (in_stock | out_of_stock | all)" default(all)
// @Param currency query string false "Price currency (USD | JPY)" default(USD)
// @Param sort query string false "Sort key" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page, capped at 100" default(20)
// @Success 200 {object} models.SearchResponse
// @Failure 500 {object} map[string]string
// @Router /store/search [get]
func SearchProducts(c *gin.Context) {
	filters := parseSearchFilters(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.SearchCatalog(ctx, searchRepo, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to search products",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchProductsAdvanced godoc
// @Summary Search the catalog with a JSON filter payload
// @Description Same pipeline as the GET endpoint, with filters supplied in the request body instead of query parameters.
// @Tags Storefront - Search
// @Accept json
// @Produce json
// @Param filters body models.SearchFilters true "Search filters"
// @Success 200 {object} models.SearchResponse
// @Failure 500 {object} map[string]string
// @Router /store/search [post]
func SearchProductsAdvanced(c *gin.Context) {
	var filters models.SearchFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		// Tolerant like the GET endpoint: an unreadable body searches
		// the whole active catalog with defaults.
		filters = models.SearchFilters{}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.SearchCatalog(ctx, searchRepo, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to perform advanced search",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
