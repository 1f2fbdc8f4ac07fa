package models

// ═══════════════════════════════════════════════════════════
// Search Request
// ═══════════════════════════════════════════════════════════

// Currency selects which stored price field filters and sorting apply to.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
)

// StockStatus narrows results by stock quantity.
type StockStatus string

const (
	StockAll        StockStatus = "all"
	StockInStock    StockStatus = "in_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// SortKey enumerates the supported result orderings.
type SortKey string

const (
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortStockAsc  SortKey = "stock_asc"
	SortStockDesc SortKey = "stock_desc"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchFilters is the transient, client-supplied filter request.
// Empty value-sets mean "no restriction", not "match nothing".
type SearchFilters struct {
	Query       string          `json:"query,omitempty"`
	Category    string          `json:"category,omitempty"`
	GameTypes   []GameType      `json:"gameTypes,omitempty"`
	PriceMin    *float64        `json:"priceMin,omitempty"`
	PriceMax    *float64        `json:"priceMax,omitempty"`
	Rarities    []string        `json:"rarities,omitempty"`
	Conditions  []CardCondition `json:"conditions,omitempty"`
	StockStatus StockStatus     `json:"stockStatus"`
	Currency    Currency        `json:"currency"`
	Sort        SortKey         `json:"sort"`
	Page        int             `json:"page"`
	Limit       int             `json:"limit"`
}

// Normalize fills in defaults and clamps bounds. Unknown sort keys and
// stock statuses degrade to their defaults rather than erroring.
func (f *SearchFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Currency != CurrencyJPY {
		f.Currency = CurrencyUSD
	}
	switch f.StockStatus {
	case StockInStock, StockOutOfStock:
	default:
		f.StockStatus = StockAll
	}
	switch f.Sort {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc,
		SortNewest, SortOldest, SortStockAsc, SortStockDesc:
	default:
		f.Sort = SortNewest
	}
}

// ═══════════════════════════════════════════════════════════
// Search Result Envelope
// ═══════════════════════════════════════════════════════════

// SearchPagination describes the returned page relative to the full
// filtered set.
type SearchPagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// FacetOption is one observed value of a filterable dimension with its
// match count over the filtered set.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceAmounts carries both stored currencies side by side.
type PriceAmounts struct {
	Usd float64 `json:"usd"`
	Jpy float64 `json:"jpy"`
}

// PriceBounds is the observed min/max price over the filtered set.
// Both bounds are zero when the filtered set is empty.
type PriceBounds struct {
	Min PriceAmounts `json:"min"`
	Max PriceAmounts `json:"max"`
}

// AvailableFilters drives the storefront filter controls: facet counts
// computed over the filtered-but-unpaginated set plus price bounds.
type AvailableFilters struct {
	GameTypes  []FacetOption `json:"gameTypes"`
	Rarities   []FacetOption `json:"rarities"`
	Conditions []FacetOption `json:"conditions"`
	PriceRange PriceBounds   `json:"priceRange"`
}

// SearchFilterBlock pairs the applied request with the available filters.
type SearchFilterBlock struct {
	Applied   SearchFilters    `json:"applied"`
	Available AvailableFilters `json:"available"`
}

// SearchMeta carries per-response metadata.
type SearchMeta struct {
	SearchTime int64    `json:"searchTime"`
	Currency   Currency `json:"currency"`
}

// SearchResponse is the full search envelope.
type SearchResponse struct {
	Products   []Product         `json:"products"`
	Pagination SearchPagination  `json:"pagination"`
	Filters    SearchFilterBlock `json:"filters"`
	Meta       SearchMeta        `json:"meta"`
}
