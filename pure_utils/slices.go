package pure_utils

import (
	"github.com/hashicorp/go-set/v2"
)

// Deduplicate returns the distinct items of input, keeping the order of first appearance.
func Deduplicate[T comparable](input []T) []T {
	seen := set.New[T](len(input))
	output := make([]T, 0, len(input))
	for _, item := range input {
		if seen.Insert(item) {
			output = append(output, item)
		}
	}
	return output
}
