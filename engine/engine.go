package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wick/contract"
	"github.com/katalvlaran/wick/derive"
	"github.com/katalvlaran/wick/operator"
	"github.com/katalvlaran/wick/optimize"
	"golang.org/x/sync/errgroup"
)

// Engine evaluates tasks against an operator table.
// An Engine holds no per-task state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New applies the options over DefaultOptions.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine{opts: o}
}

// Options returns a copy of the effective options.
func (e *Engine) Options() Options { return e.opts }

// Evaluate derives the terms of a single task.
//
// Steps:
//  1. Resolve the operator string S.
//  2. Enumerate valid contractions (pruned recursion).
//  3. Expand each into a signed, canonical term.
//  4. Merge terms equal up to electron relabelling.
//
// A vanishing matrix element is a normal outcome: the result has no
// contractions and no terms.
func (e *Engine) Evaluate(ctx context.Context, tbl *operator.Table, task operator.Task) (*Result, error) {
	if e.opts.err != nil {
		return nil, e.opts.err
	}
	if tbl == nil {
		return nil, ErrTableNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := e.opts.Logger.With(slog.String("task", task.String()))

	// 1. Operator string
	s, err := tbl.Elementaries(task)
	if err != nil {
		return nil, fmt.Errorf("engine: task %q: %w", task.String(), err)
	}
	expr, err := tbl.Expression(task)
	if err != nil {
		return nil, fmt.Errorf("engine: task %q: %w", task.String(), err)
	}
	res := &Result{Task: task, Expression: expr, String: s}
	log.Debug("begin task", slog.String("expression", expr), slog.Int("length", len(s)))

	// 2. Contractions
	for c := range contract.Valid(s) {
		e.opts.OnContraction(task, len(res.Contractions), c)
		res.Contractions = append(res.Contractions, c)
	}
	if res.Zero() {
		log.Info("no fully contracted terms possible, matrix element is zero", slog.Int("length", len(s)))
		return res, nil
	}

	// 3. Terms
	ex, err := derive.Expand(tbl, task, res.Contractions)
	if err != nil {
		return nil, fmt.Errorf("engine: task %q: %w", task.String(), err)
	}
	res.Expansions = ex.Expansions
	res.Terms = ex.Terms
	res.Dropped = ex.Dropped
	if res.Dropped > 0 {
		log.Warn("contractions left several residual tensors and were skipped", slog.Int("dropped", res.Dropped))
	}

	// 4. Merge
	res.Classes = optimize.Classes(res.Terms)
	res.Unique = make([]derive.Term, 0, len(res.Classes))
	for _, c := range res.Classes {
		res.Unique = append(res.Unique, c.Folded())
	}

	log.Info("task evaluated",
		slog.Int("contractions", len(res.Contractions)),
		slog.Int("terms", len(res.Terms)),
		slog.Int("unique", len(res.Unique)),
		slog.Int("dropped", res.Dropped),
	)

	return res, nil
}

// EvaluateAll evaluates every task and returns results in task order.
// Up to Options.Workers tasks run concurrently; the first error cancels the rest.
func (e *Engine) EvaluateAll(ctx context.Context, tbl *operator.Table, tasks []operator.Task) ([]*Result, error) {
	if e.opts.err != nil {
		return nil, e.opts.err
	}
	if tbl == nil {
		return nil, ErrTableNil
	}

	results := make([]*Result, len(tasks))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i, task := range tasks {
		g.Go(func() error {
			res, err := e.Evaluate(gCtx, tbl, task)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
