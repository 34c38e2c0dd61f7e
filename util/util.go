package util

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func Sum[A constraints.Integer](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// FormatList renders items as "[a, b, c]".
func FormatList[A any](items []A) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Combinations calls visit with every k-element combination of items, in
// lexicographic order of indices. The slice passed to visit is reused between
// calls. Enumeration stops early when visit returns false.
func Combinations[A any](items []A, k int, visit func([]A) bool) {
	n := len(items)
	if k < 0 || k > n {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	combo := make([]A, k)
	for {
		for i, idx := range indices {
			combo[i] = items[idx]
		}
		if !visit(combo) {
			return
		}

		// find the rightmost index that can still move right
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// Seq returns [from, from+1, ..., to).
func Seq(from, to int) []int {
	if to <= from {
		return []int{}
	}
	res := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		res = append(res, i)
	}
	return res
}
