package arcroom

import "golang.org/x/exp/constraints"

func clamp[T constraints.Ordered](x, min, max T) T {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
