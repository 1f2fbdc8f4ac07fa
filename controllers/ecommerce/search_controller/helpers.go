package search_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
	"github.com/rikimaru63/cardshop-hp-miyabi/services"
)

// searchRepo is the repository the search endpoints run against. main
// wires the GORM-backed repository; tests swap in an in-memory one.
var searchRepo services.ProductRepository

// Init sets the product repository used by the search endpoints.
func Init(repo services.ProductRepository) {
	searchRepo = repo
}

// ─────────────────────────────────────────────────────────────
// Query-parameter parsing
// ─────────────────────────────────────────────────────────────

// parseSearchFilters reads the wire-level query parameters into a filter
// request. Malformed numbers and unrecognized enum values are dropped or
// defaulted rather than rejected, matching the storefront's tolerant
// input handling; Normalize (in the service) applies the remaining
// defaults and clamps.
func parseSearchFilters(c *gin.Context) models.SearchFilters {
	filters := models.SearchFilters{
		Query:       c.Query("query"),
		Category:    c.Query("category"),
		PriceMin:    parsePriceParam(c.Query("priceMin")),
		PriceMax:    parsePriceParam(c.Query("priceMax")),
		Rarities:    splitCSV(c.Query("rarities")),
		StockStatus: models.StockStatus(c.Query("stockStatus")),
		Currency:    models.Currency(c.Query("currency")),
		Sort:        models.SortKey(c.DefaultQuery("sort", string(models.SortNewest))),
	}

	for _, raw := range splitCSV(c.Query("gameTypes")) {
		if gt, ok := models.ParseGameType(raw); ok {
			filters.GameTypes = append(filters.GameTypes, gt)
		}
	}
	for _, raw := range splitCSV(c.Query("conditions")) {
		if cond, ok := models.ParseCardCondition(raw); ok {
			filters.Conditions = append(filters.Conditions, cond)
		}
	}

	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	return filters
}

// splitCSV splits a comma-separated parameter, dropping empty entries.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func parsePriceParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
