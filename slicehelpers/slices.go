package slicehelpers

// Any returns true if any element in the slice satisfies the predicate function.
func Any[T any](slice []T, predicate func(T) bool) bool {
	for _, v := range slice {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All returns true if every element in the slice satisfies the predicate function.
// An empty slice satisfies any predicate.
func All[T any](slice []T, predicate func(T) bool) bool {
	for _, v := range slice {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Unique returns the elements of slice with later duplicates dropped, keeping
// first-seen order. seen decides membership and records v as seen.
func Unique[T any](slice []T, seen func(T) bool) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if !seen(v) {
			out = append(out, v)
		}
	}
	return out
}
