package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// IndexBy builds a map of the items of src, keyed by key(item). Later items win on duplicate keys.
func IndexBy[T any, K comparable](src []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(src))
	for _, item := range src {
		index[key(item)] = item
	}
	return index
}
