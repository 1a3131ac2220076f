package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/wick/contract"
	"github.com/katalvlaran/wick/derive"
	"github.com/katalvlaran/wick/operator"
	"github.com/katalvlaran/wick/optimize"
)

// Sentinel errors for engine execution.
var (
	// ErrTableNil is returned when a nil operator table is passed.
	ErrTableNil = errors.New("engine: operator table is nil")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation on use.
type Option func(*Options)

// Options holds the engine parameters.
type Options struct {
	// Logger receives per-task diagnostics.
	Logger *slog.Logger

	// Workers bounds how many tasks EvaluateAll runs at once.
	Workers int

	// OnContraction is called for each valid contraction of a task, in order.
	OnContraction func(task operator.Task, k int, c contract.Contraction)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a discarding logger, one worker and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:       1,
		OnContraction: func(operator.Task, int, contract.Contraction) {},
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of concurrently evaluated tasks.
//
//	n ≥ 1: use n workers
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnContraction registers a hook called for every valid contraction.
// With several workers the hook may be called from different goroutines.
func WithOnContraction(fn func(task operator.Task, k int, c contract.Contraction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnContraction = fn
		}
	}
}

// Result is the full derivation of one task.
type Result struct {
	// Task is the evaluated operator sequence.
	Task operator.Task

	// Expression renders the matrix element, e.g. "<0|{i+ a }1 f {p+ q }|0>".
	Expression string

	// String is the concatenated elementary operator string.
	String []operator.Elementary

	// Contractions are the valid full contractions, in generator order.
	Contractions []contract.Contraction

	// Expansions trace every contraction through the deriver.
	Expansions []derive.Expansion

	// Terms are the derived terms before optimization.
	Terms []derive.Term

	// Classes group Terms by electron-relabelling equivalence.
	Classes []optimize.Class

	// Unique are the folded representatives of Classes.
	Unique []derive.Term

	// Dropped counts contractions that left more than one residual tensor.
	Dropped int
}

// Zero reports that no full contraction survives: the matrix element vanishes.
func (r *Result) Zero() bool { return len(r.Contractions) == 0 }
