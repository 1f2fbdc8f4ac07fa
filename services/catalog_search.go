package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// ErrSearchUnavailable is the single error kind surfaced for any
// repository-level failure. The underlying cause is logged server-side
// and never reaches the caller.
var ErrSearchUnavailable = errors.New("search unavailable")

// SearchCatalog runs the full search pipeline: compile the predicate,
// fetch the filtered set from the repository, aggregate facets over the
// filtered-but-unpaginated set, then sort, paginate, and assemble the
// envelope. The stage order is fixed; facet counts must reflect the
// pre-pagination set.
//
// The call is stateless and read-only, so concurrent searches need no
// coordination. Only the repository fetch observes ctx; the in-memory
// stages run to completion once the snapshot is in hand.
func SearchCatalog(ctx context.Context, repo ProductRepository, filters models.SearchFilters) (*models.SearchResponse, error) {
	filters.Normalize()

	match := CompileFilters(filters)
	filtered, err := repo.FindActiveMatching(ctx, match)
	if err != nil {
		log.Printf("catalog search: repository failure: %v", err)
		return nil, ErrSearchUnavailable
	}

	available := AggregateFacets(filtered)
	SortProducts(filtered, filters.Sort, filters.Currency)
	page, pagination := PaginateProducts(filtered, filters.Page, filters.Limit)

	return &models.SearchResponse{
		Products:   page,
		Pagination: pagination,
		Filters: models.SearchFilterBlock{
			Applied:   filters,
			Available: available,
		},
		Meta: models.SearchMeta{
			SearchTime: time.Now().UnixMilli(),
			Currency:   filters.Currency,
		},
	}, nil
}
