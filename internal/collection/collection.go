// Package collection provides small slice helpers used by value objects.
package collection

import "slices"

// Immutable returns a copy of s that the caller no longer shares with anyone.
// The result is never nil and its capacity is clipped, so an append on it
// always reallocates instead of writing past its end.
func Immutable[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return slices.Clip(slices.Clone(s))
}
