package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination/internal/collection"
)

func TestImmutable_NilAndEmpty(t *testing.T) {
	var nilSlice []string

	got := collection.Immutable(nilSlice)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = collection.Immutable([]string{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestImmutable_DetachesFromSource(t *testing.T) {
	src := []int{1, 2, 3}

	got := collection.Immutable(src)
	src[0] = 100

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestImmutable_AppendDoesNotLeak(t *testing.T) {
	backing := make([]int, 3, 10)
	copy(backing, []int{1, 2, 3})

	got := collection.Immutable(backing)
	assert.Equal(t, len(got), cap(got))

	grown := append(got, 4)
	grown[0] = 42

	assert.Equal(t, []int{1, 2, 3}, got)
}
