// Package engine runs the wick pipeline for whole tasks.
//
// A task <bra| op1 … opk |ket> goes through three pure stages:
//
//	operator string ──contract.Valid──▶ contractions
//	                ──derive.Expand───▶ signed terms
//	                ──optimize.Classes▶ terms unique up to electron relabelling
//
// Each stage completes before the next starts. Tasks only read the shared
// operator.Table, so EvaluateAll may run several of them at once; results
// always come back in task order and equal a sequential run.
//
// Options:
//
//   - WithLogger(l)        structured diagnostics via log/slog (discarded by default).
//   - WithWorkers(n)       tasks evaluated concurrently by EvaluateAll (n ≥ 1).
//   - WithOnContraction(f) hook invoked for every valid contraction.
//
// Errors:
//
//   - ErrTableNil          if the table is nil.
//   - ErrOptionViolation   if an option was invalid.
//   - operator.ErrUnknownOperator for tasks naming undeclared operators.
//   - ctx.Err()            if the context is done between tasks.
package engine
