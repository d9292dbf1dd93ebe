package statistic

import "golang.org/x/exp/constraints"

// Number constrains the element types the generic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

func sumOf[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

func minOf[T Number](values []T) T {
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

func maxOf[T Number](values []T) T {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
