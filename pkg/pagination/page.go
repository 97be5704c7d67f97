// Package pagination models one page of a larger, possibly unbounded, result set.
// A Page is an immutable snapshot: some elements plus where they sit in the whole.
// It does not fetch data and does not validate that its page index is in range;
// callers that need that guarantee check PageCount themselves.
package pagination

import (
	"math"

	"github.com/maxviazov/pagination/internal/assert"
	"github.com/maxviazov/pagination/internal/collection"
)

// MinimalPageCount is the page count of an empty result set.
const MinimalPageCount = 1

// Page holds a bounded slice of elements and its position in the full result set.
// The zero value is an empty single page with page size 0.
type Page[T any] struct {
	content            []T
	currentPage        int
	pageSize           int
	totalElementsCount int64
}

// SinglePage presents an already complete result as its own only page.
func SinglePage[T any](elements []T) Page[T] {
	return NewBuilder(elements).Build()
}

// Of cuts the page described by p out of the full, in-memory result set.
// An offset past the end yields empty content and a page overrunning the end is truncated.
// The page keeps p's index and size as given, even when the slice is shorter.
func Of[T any](elements []T, p Pageable) (Page[T], error) {
	if err := assert.NotNil("elements", elements); err != nil {
		return Page[T]{}, invalidArgument("elements", "must not be nil", err)
	}
	if err := assert.NotNil("pagination", p); err != nil {
		return Page[T]{}, invalidArgument("pagination", "must not be nil", err)
	}

	n := len(elements)
	from := clamp(p.Offset(), 0, n)
	to := clamp(p.Offset()+p.PageSize(), from, n)

	return NewBuilder(elements[from:to]).
		CurrentPage(p.Page()).
		PageSize(p.PageSize()).
		TotalElementsCount(int64(n)).
		Build(), nil
}

// Map builds a new page whose elements are mapper applied to p's elements, in order.
// Page index, page size and total count are carried over unchanged.
func Map[T, R any](p Page[T], mapper func(T) R) (Page[R], error) {
	if err := assert.NotNil("mapper", mapper); err != nil {
		return Page[R]{}, invalidArgument("mapper", "must not be nil", err)
	}

	mapped := make([]R, len(p.content))
	for i, el := range p.content {
		mapped[i] = mapper(el)
	}

	// mapped is owned here, so it skips the copy Build would make.
	return Page[R]{
		content:            mapped,
		currentPage:        p.currentPage,
		pageSize:           p.pageSize,
		totalElementsCount: p.totalElementsCount,
	}, nil
}

// Content returns a copy of the page elements; changing it does not change the page.
func (p Page[T]) Content() []T { return collection.Immutable(p.content) }

func (p Page[T]) CurrentPage() int          { return p.currentPage }
func (p Page[T]) PageSize() int             { return p.pageSize }
func (p Page[T]) TotalElementsCount() int64 { return p.totalElementsCount }

// PageCount is the number of pages of PageSize needed to hold every element, never below 1.
// It saturates at math.MaxInt.
func (p Page[T]) PageCount() int {
	if p.totalElementsCount <= 0 || p.pageSize <= 0 {
		return MinimalPageCount
	}
	count := math.Ceil(float64(p.totalElementsCount) / float64(p.pageSize))
	if count >= math.MaxInt {
		return math.MaxInt
	}
	return int(count)
}

func (p Page[T]) HasPrevious() bool { return p.currentPage > 0 }

// HasNext reports whether a page follows this one. Same as IsNotLast.
func (p Page[T]) HasNext() bool { return p.IsNotLast() }

func (p Page[T]) IsNotLast() bool { return p.currentPage+1 < p.PageCount() }

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
