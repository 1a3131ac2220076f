// Package wick evaluates vacuum expectation values of products of
// normal-ordered second-quantized operators with Wick's theorem.
//
// What is wick?
//
//	A small symbolic engine that turns <bra| op1 … opk |ket> into a signed
//	sum of tensor elements times Kronecker deltas:
//		• Operator model: hole/particle/any indices, creation/annihilation
//		• Contraction generator: every non-vanishing full contraction
//		• Expression deriver: fermion sign, deltas, canonical relabelling
//		• Term optimizer: merges terms equal up to electron relabelling
//
// Packages:
//
//	operator/ : elementary operators, declarations, the operator table
//	contract/ : perfect matchings and the vanishing rules
//	derive/   : sign, Kronecker deltas, delta canonicalization
//	optimize/ : equivalence classes of terms and folding
//	engine/   : per-task pipeline, worker fan-out, slog logging
//	input/    : native line format and YAML readers
//	report/   : text listings of every stage
//	config/   : environment configuration for the CLI
//	cmd/wick/ : command-line front end
//
// Quick example, the singles block of the Fock operator:
//
//	holes i j
//	particles a b
//	any p q
//	operator bra 1.0 { i+ a }
//	operator f   1.0 { p+ q }
//	operator ket 1.0 { b+ j }
//	? bra f ket
//
// gives
//
//	- 1 f [ j i ] d_ab
//	+ 1 f [ a b ] d_ij
//
//	go install github.com/katalvlaran/wick/cmd/wick@latest
package wick
