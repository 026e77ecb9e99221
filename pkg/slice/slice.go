// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package slice complements the standard [slices] package with the few generic
transformations the stores apply to backend payloads.
*/
package slice

// Map returns transform applied to every element. A nil input yields nil.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter returns the elements for which keep is true, in order.
// The result is never nil so it encodes as an empty JSON array.
func Filter[T any](input []T, keep func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
