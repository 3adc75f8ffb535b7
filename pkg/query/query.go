package query

// WrapInArray returns a one-element slice holding v
func WrapInArray[T any](v T) []T {
	return []T{v}
}

// Map applies fn to every element, preserving order
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// Filter returns the elements for which keep is true, in input order
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the first element matching pred
func Find[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Reduce folds items into an accumulator starting from initial
func Reduce[T, A any](items []T, initial A, fn func(A, T) A) A {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Count counts the elements by folding over them
func Count[T any](items []T) int {
	return Reduce(items, 0, func(n int, _ T) int { return n + 1 })
}
