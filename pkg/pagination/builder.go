package pagination

import "github.com/maxviazov/pagination/internal/collection"

// optional marks a builder field as explicitly set, so any int (even -1) is a legal value.
type optional[V any] struct {
	value V
	set   bool
}

func some[V any](v V) optional[V] { return optional[V]{value: v, set: true} }

func (o optional[V]) or(fallback V) V {
	if o.set {
		return o.value
	}
	return fallback
}

// Builder stages the fields of a Page. It is single-use: call Build once and drop it.
// Page size and total count left unset fall back to the content length.
type Builder[T any] struct {
	content            []T
	currentPage        int
	pageSize           optional[int]
	totalElementsCount optional[int64]
}

func NewBuilder[T any](content []T) *Builder[T] {
	return &Builder[T]{content: content}
}

func (b *Builder[T]) CurrentPage(currentPage int) *Builder[T] {
	b.currentPage = currentPage
	return b
}

func (b *Builder[T]) PageSize(pageSize int) *Builder[T] {
	b.pageSize = some(pageSize)
	return b
}

func (b *Builder[T]) TotalElementsCount(totalElementsCount int64) *Builder[T] {
	b.totalElementsCount = some(totalElementsCount)
	return b
}

// Build copies the staged content into a new Page.
func (b *Builder[T]) Build() Page[T] {
	content := collection.Immutable(b.content)
	return Page[T]{
		content:            content,
		currentPage:        b.currentPage,
		pageSize:           b.pageSize.or(len(content)),
		totalElementsCount: b.totalElementsCount.or(int64(len(content))),
	}
}
