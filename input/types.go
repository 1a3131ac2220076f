package input

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wick/operator"
)

// Sentinel errors for input parsing.
var (
	// ErrMalformedLine indicates a directive with a broken shape.
	ErrMalformedLine = errors.New("input: malformed line")

	// ErrUnknownDirective indicates a line that starts with no known keyword.
	ErrUnknownDirective = errors.New("input: wrong line")

	// ErrInvalidDocument indicates a YAML document that fails validation.
	ErrInvalidDocument = errors.New("input: invalid document")
)

// Document is the parsed content of an input file.
type Document struct {
	Classes      operator.IndexClasses
	Declarations []operator.Declaration
	Tasks        []operator.Task
}

// Build constructs the operator table and checks that every task refers
// to declared operators.
func (d *Document) Build() (*operator.Table, error) {
	tbl, err := operator.Build(d.Declarations, d.Classes)
	if err != nil {
		return nil, err
	}
	for k, task := range d.Tasks {
		if _, err = tbl.Operators(task); err != nil {
			return nil, fmt.Errorf("input: task %d (%s): %w", k+1, task, err)
		}
	}
	return tbl, nil
}

// Input bundles the table with its tasks, ready for the engine.
type Input struct {
	Document
	Table *operator.Table
}
