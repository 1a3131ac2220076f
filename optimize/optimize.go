package optimize

import (
	"slices"

	"github.com/katalvlaran/wick/derive"
	"gonum.org/v1/gonum/stat/combin"
)

// Class is one equivalence class of terms.
type Class struct {
	// Representative is a copy of the first member seen.
	Representative derive.Term

	// Members are the input positions of every term in the class.
	Members []int
}

// Multiplicity is the number of terms folded into the class.
func (c Class) Multiplicity() int { return len(c.Members) }

// Folded returns the representative with its factor multiplied by the multiplicity.
func (c Class) Folded() derive.Term {
	t := c.Representative.Clone()
	t.Factor *= float64(c.Multiplicity())
	return t
}

// Classes partitions terms into equivalence classes in first-seen order.
// Each term is compared with the existing representatives only.
func Classes(terms []derive.Term) []Class {
	var classes []Class
	for k, t := range terms {
		found := false
		for c := range classes {
			if Equivalent(t, classes[c].Representative) {
				classes[c].Members = append(classes[c].Members, k)
				found = true
				break
			}
		}
		if !found {
			classes = append(classes, Class{Representative: t.Clone(), Members: []int{k}})
		}
	}
	return classes
}

// Optimize returns one folded term per class, in first-seen order.
// The input slice is not modified.
func Optimize(terms []derive.Term) []derive.Term {
	classes := Classes(terms)
	out := make([]derive.Term, 0, len(classes))
	for _, c := range classes {
		out = append(out, c.Folded())
	}
	return out
}

// Equivalent reports whether t and r describe the same contribution up to a
// lockstep permutation of their bra and ket index blocks.
func Equivalent(t, r derive.Term) bool {
	// 1. Cheap scalar checks
	if t.Sign != r.Sign || t.Factor != r.Factor || t.Tensor.Name != r.Tensor.Name {
		return false
	}
	ti, ri := t.Tensor.Indices, r.Tensor.Indices
	if len(ti) != len(ri) {
		return false
	}

	// 2. Delta sets
	if !SameDeltas(t.Deltas, r.Deltas) {
		return false
	}

	// 3. Signature fast reject
	if !slices.Equal(Signature(ti), Signature(ri)) {
		return false
	}

	// 4. Odd rank has no bra/ket split: only the identity applies
	if len(ti)%2 != 0 {
		return slices.Equal(ti, ri)
	}

	return blockPermutation(ti, ri) != nil
}

// SameDeltas compares two delta lists as sets.
func SameDeltas(a, b []derive.Delta) bool {
	sa := make(map[derive.Delta]struct{}, len(a))
	for _, d := range a {
		sa[derive.NewDelta(d.A, d.B)] = struct{}{}
	}
	sb := make(map[derive.Delta]struct{}, len(b))
	for _, d := range b {
		sb[derive.NewDelta(d.A, d.B)] = struct{}{}
	}
	if len(sa) != len(sb) {
		return false
	}
	for d := range sa {
		if _, ok := sb[d]; !ok {
			return false
		}
	}
	return true
}

// Signature is the sorted copy of an index tuple; lockstep block
// permutations leave it unchanged.
func Signature(indices []string) []string {
	sig := slices.Clone(indices)
	slices.Sort(sig)
	return sig
}

// blockPermutation returns π with t[π[k]] == r[k] and t[n+π[k]] == r[n+k]
// for every k < n = len(t)/2, or nil when none exists.
func blockPermutation(t, r []string) []int {
	n := len(t) / 2
	if n == 0 {
		return []int{}
	}
	perm := make([]int, n)
	gen := combin.NewPermutationGenerator(n, n)
	for gen.Next() {
		gen.Permutation(perm)
		match := true
		for k := 0; k < n; k++ {
			if t[perm[k]] != r[k] || t[n+perm[k]] != r[n+k] {
				match = false
				break
			}
		}
		if match {
			return perm
		}
	}
	return nil
}
