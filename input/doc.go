// Package input reads operator declarations and tasks.
//
// Native format, one directive per line ('#' starts a comment):
//
//	holes     i j k l
//	particles a b c d
//	any       p q r s
//	operator  bra 1.0 { i+ j+ b a }
//	operator  v   0.25 { p+ q+ s r }
//	? bra v
//
// Index classes must be declared before an operator uses them; an unknown
// index letter fails on the operator line. A '?' line is a task: the names
// of the operators forming <bra| … |ket>.
//
// YAML format (selected by ParseFile for .yaml/.yml):
//
//	indices:
//	  holes: [i, j]
//	  particles: [a, b]
//	  any: [p, q]
//	operators:
//	  - {name: f, factor: 1.0, ops: [p+, q]}
//	tasks:
//	  - [bra, f, ket]
//
// Both readers fail fast: the engine never sees a malformed declaration.
package input
