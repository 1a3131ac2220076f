package contract

import (
	"iter"
	"slices"

	"github.com/katalvlaran/wick/operator"
)

// All yields every perfect matching over positions 0…n-1.
// Odd n yields nothing; n == 0 yields one empty matching.
func All(n int) iter.Seq[Contraction] {
	return matchings(n, func(int, int) bool { return true })
}

// Valid yields the perfect matchings of s in which no pair vanishes by Check.
//
// Pair admissibility is tabulated once (n² checks) and consulted before
// descending, so a forbidden pair cuts its whole subtree.
func Valid(s []operator.Elementary) iter.Seq[Contraction] {
	n := len(s)
	ok := make([][]bool, n)
	for i := 0; i < n; i++ {
		ok[i] = make([]bool, n)
		for j := i + 1; j < n; j++ {
			ok[i][j] = Allowed(s[i], s[j])
		}
	}
	return matchings(n, func(i, j int) bool { return ok[i][j] })
}

// Generate materializes Valid(s). An empty (nil) result means the
// expectation value vanishes; it is not an error.
func Generate(s []operator.Elementary) []Contraction {
	var out []Contraction
	for c := range Valid(s) {
		out = append(out, c)
	}
	return out
}

// Count consumes a sequence and returns how many contractions it yielded.
func Count(seq iter.Seq[Contraction]) int {
	var k int
	for range seq {
		k++
	}
	return k
}

// matchings drives the recursion shared by All and Valid.
//
// State lives in the closure of a single call: used marks paired positions,
// pairs is the partial matching. Each yielded Contraction is a fresh copy.
func matchings(n int, allow func(i, j int) bool) iter.Seq[Contraction] {
	return func(yield func(Contraction) bool) {
		if n < 0 || n%2 != 0 {
			return
		}
		used := make([]bool, n)
		pairs := make(Contraction, 0, n/2)

		var rec func() bool
		rec = func() bool {
			// 1. Smallest unpaired position
			first := -1
			for k := 0; k < n; k++ {
				if !used[k] {
					first = k
					break
				}
			}
			if first < 0 {
				return yield(slices.Clone(pairs))
			}

			// 2. Pair it with every admissible partner, in increasing order
			used[first] = true
			for j := first + 1; j < n; j++ {
				if used[j] || !allow(first, j) {
					continue
				}
				used[j] = true
				pairs = append(pairs, Pair{I: first, J: j})
				more := rec()
				pairs = pairs[:len(pairs)-1]
				used[j] = false
				if !more {
					used[first] = false
					return false
				}
			}
			used[first] = false

			return true
		}
		rec()
	}
}
