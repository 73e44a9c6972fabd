package gen

import (
	"errors"
	"fmt"
)

var errCycle = errors.New("dependency cycle")

// dependencyOrder returns the indices 0..n-1 ordered so that every index
// comes after the indices deps(i) reports. Among the indices that are
// ready, the smallest goes first, so independent records keep their
// declaration order. An index never waits on itself.
//
// On a cycle the stuck indices are returned with an error wrapping errCycle.
func dependencyOrder(n int, deps func(i int) []int) ([]int, error) {
	waits := make([][]int, n)

	for i := range n {
		for _, d := range deps(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("index %d depends on %d, outside [0, %d)", i, d, n)
			}

			if d != i {
				waits[i] = append(waits[i], d)
			}
		}
	}

	placed := make([]bool, n)
	order := make([]int, 0, n)

	ready := func(i int) bool {
		for _, d := range waits[i] {
			if !placed[d] {
				return false
			}
		}

		return true
	}

	for len(order) < n {
		next := -1

		for i := range n {
			if !placed[i] && ready(i) {
				next = i
				break
			}
		}

		if next < 0 {
			var stuck []int

			for i := range n {
				if !placed[i] {
					stuck = append(stuck, i)
				}
			}

			return stuck, fmt.Errorf("%w between %d entries", errCycle, len(stuck))
		}

		placed[next] = true
		order = append(order, next)
	}

	return order, nil
}
