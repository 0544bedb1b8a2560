package redmine

import (
	"context"
)

// DefaultPageSize is used when a caller does not override the page size.
const DefaultPageSize = 100

// Page is one page of results handed to the aggregator by a PageFunc.
// HasTotal is false when the server omitted total_count from the envelope.
type Page[T any] struct {
	Items      []T
	TotalCount int
	HasTotal   bool
}

// PageFunc fetches a single page at the given offset with the given limit.
type PageFunc[T any] func(ctx context.Context, offset, limit int) (Page[T], error)

// Collection is the aggregated result of draining a paginated listing.
type Collection[T any] struct {
	// Items holds every collected entity in source order.
	Items []T
	// Count is len(Items).
	Count int
	// TotalAvailable is the total the source reported, which can exceed
	// Count when a caller-supplied cap stopped collection early.
	TotalAvailable int
}

// CollectAll drives fetch with increasing offsets until every available item
// has been retrieved, or maxItems (when positive) is reached.
//
// Termination: offset strictly increases by pageSize each iteration, and the
// loop stops as soon as the accumulator reaches the reported total_count, the
// caller's cap, or a page comes back empty. A non-positive pageSize would
// never advance and is rejected before any request is issued.
//
// Errors from fetch propagate as-is; aggregation introduces no error kind of
// its own.
func CollectAll[T any](ctx context.Context, fetch PageFunc[T], pageSize, maxItems int) (*Collection[T], error) {
	if pageSize <= 0 {
		return nil, NewValidationError("page size must be positive, got %d", pageSize)
	}

	var items []T

	offset := 0
	total := -1 // unknown until the server reports it

	for {
		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		offset += pageSize

		if page.HasTotal {
			total = page.TotalCount
		}

		if maxItems > 0 && len(items) >= maxItems {
			items = items[:maxItems]

			break
		}

		if total >= 0 && len(items) >= total {
			break
		}

		// An empty page means no further progress is possible,
		// whether total_count was omitted or inconsistent.
		if len(page.Items) == 0 {
			break
		}
	}

	totalAvailable := total
	if totalAvailable < 0 {
		totalAvailable = len(items)
	}

	return &Collection[T]{
		Items:          items,
		Count:          len(items),
		TotalAvailable: totalAvailable,
	}, nil
}
