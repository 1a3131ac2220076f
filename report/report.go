// Package report renders engine results as plain text.
//
// The layout follows the classic wick listing: task banner, matrix element,
// elementary operator string, every contraction drawn as two aligned rows
// (operators and pair numbers), raw ⇒ canonical expressions, and the term
// list before and after merging equivalent terms.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wick/engine"
)

const (
	wideRule = "----------------------------------------------------------"
)

// Option configures a Writer.
type Option func(*Writer)

// WithQuiet prints only the task line and the merged terms.
func WithQuiet() Option {
	return func(w *Writer) { w.quiet = true }
}

// Writer prints results to an io.Writer. The first write error is kept and
// returned by every later call.
type Writer struct {
	out   io.Writer
	quiet bool
	err   error
}

// New wraps out.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out}
	for _, fn := range opts {
		fn(w)
	}
	return w
}

// Write prints every result in order.
func (w *Writer) Write(results []*engine.Result) error {
	for _, r := range results {
		if err := w.Result(r); err != nil {
			return err
		}
	}
	return w.err
}

// Result prints a single task.
func (w *Writer) Result(r *engine.Result) error {
	if w.quiet {
		w.printf("%s\n", r.Expression)
		w.terms(r)
		return w.err
	}

	w.printf("\n%s\nBegin task:  %s\n%s\n\n", wideRule, r.Task, wideRule)
	w.printf("Matrix element expression: %s\n", r.Expression)
	ops := make([]string, len(r.String))
	for k, e := range r.String {
		ops[k] = e.String()
	}
	w.printf("Elementary operators string:  [%s]\n\n", strings.Join(ops, " "))

	if r.Zero() {
		w.printf("%s\nNo fully contracted terms possible, matrix element will be zero!\n", wideRule)
		return w.err
	}

	w.contractions(r)
	w.expressions(r)

	w.printf("Optimization of analytic expression\n%s\n", strings.Repeat("-", 35))
	w.printf("Terms:\n")
	for k, t := range r.Terms {
		w.printf("(%d) %s\n", k, t)
	}
	w.printf("\nTerms unique wrt permutations of electrons:\n")
	w.terms(r)
	w.printf("\n")

	return w.err
}

// contractions draws each matching under the operator string.
func (w *Writer) contractions(r *engine.Result) {
	rule := strings.Repeat("-", 31)
	w.printf("Possible non-zero contractions:\n%s\n\n", rule)
	n := len(r.String)
	for k, c := range r.Contractions {
		var ops, labels strings.Builder
		for _, e := range r.String {
			fmt.Fprintf(&ops, "%-2s ", e.String())
		}
		for _, l := range c.Labels(n) {
			fmt.Fprintf(&labels, "%-2d ", l)
		}
		w.printf("(%2d)  %s\n      %s\n\n", k, ops.String(), labels.String())
	}
	w.printf("%s\nTotal number of possible contractions: %d\n\n", rule, len(r.Contractions))
}

// expressions prints raw => canonical for every contraction.
func (w *Writer) expressions(r *engine.Result) {
	rule := strings.Repeat("-", 30)
	w.printf("Expression for matrix element:\n%s\n", rule)
	for _, ex := range r.Expansions {
		w.printf("%s => %s\n", ex.Raw(), ex.Canonical())
	}
	if r.Dropped > 0 {
		w.printf("(%d contraction(s) leave several operators and are not collected)\n", r.Dropped)
	}
	w.printf("%s\n\n", rule)
}

// terms prints the merged terms, or 0 when none survive.
func (w *Writer) terms(r *engine.Result) {
	if len(r.Unique) == 0 {
		w.printf("  0\n")
		return
	}
	for k, t := range r.Unique {
		w.printf("(%d) %s\n", k, t)
	}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
