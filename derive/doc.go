// Package derive turns contractions into signed algebraic terms.
//
// For every contraction of <bra| op1 … opk |ket> it computes:
//
//   - the fermionic sign, folding the pairs in generator order over an
//     explicit set of still-active positions: a pair (i<j) flips the sign
//     when an odd number of active positions lies strictly between i and j;
//   - one Kronecker delta per pair, names in lexicographic order;
//   - a residual label per non-bra/ket operator: creation indices in declared
//     order followed by annihilation indices in reverse order, so that
//     p+ q+ s r becomes v[p q r s];
//   - the canonical form: self-deltas dropped, every summed (non-bra/ket)
//     index eliminated through a delta that links it to another name.
//
// A contraction that leaves exactly one residual tensor emits a Term.
// Zero or several residual tensors emit nothing; such contractions are
// counted in Result.Dropped and the rest of the task is unaffected.
//
// Example, <Φ_i^a| f |Φ_j^b> contracted as (0,3)(1,4)(2,5):
//
//	- 1 f [ p q ] d_iq d_ab d_jp  =>  - 1 f [ j i ] d_ab
package derive
