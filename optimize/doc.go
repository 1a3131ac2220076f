// Package optimize merges terms that are equal up to a relabelling of electrons.
//
// Two terms are equivalent when they have the same sign, prefactor, tensor
// name and rank, the same set of Kronecker deltas, and some permutation π of
// {0…n−1}, n = rank/2, applied in lockstep to the bra block [0,n) and the ket
// block [n,2n) of one index tuple reproduces the other:
//
//	v[i j a b] ≡ v[j i b a]      (π = (1 0))
//	v[i j a b] ≢ v[i j b a]
//
// Optimize keeps the first-seen term of each class as its representative
// and multiplies its factor by the class size.
//
// The permutation search is O(n!) per comparison and uses gonum's
// stat/combin generator; a sorted-index signature rejects most pairs first.
// Realistic ranks are 2–6.
package optimize
