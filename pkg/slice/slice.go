// Copyright (c) 2026 Kinotek. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package with the small set
operations the stores need for junction-table bookkeeping (genre edges,
friend intersections).
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Diff returns the elements of a that are absent from b, treating both as sets.
// The relative order of a is preserved; duplicates in a are collapsed.
func Diff[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	var result []T
	seen := make(map[T]struct{}, len(a))
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, found := exclude[v]; !found {
			result = append(result, v)
		}
	}

	return result
}

// Dedupe collapses duplicate elements, preserving first-seen order.
func Dedupe[T comparable](input []T) []T {
	if input == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}

// Intersect returns the elements present in both a and b, in a's order, deduplicated.
func Intersect[T comparable](a, b []T) []T {
	include := make(map[T]struct{}, len(b))
	for _, v := range b {
		include[v] = struct{}{}
	}

	var result []T
	seen := make(map[T]struct{}, len(a))
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, found := include[v]; found {
			result = append(result, v)
		}
	}

	return result
}
