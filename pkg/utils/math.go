package utils

import "golang.org/x/exp/constraints"

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
