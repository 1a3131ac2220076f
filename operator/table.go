package operator

import (
	"fmt"
	"strings"
)

// Table maps operator names to their definitions.
// A Table is read-only once Build returns and may be shared across goroutines.
type Table struct {
	ops   map[string]*Operator
	order []string
}

// Build resolves declarations against the index classes and returns a Table.
//
// Steps:
//  1. Index every class letter, rejecting letters listed twice.
//  2. For each declaration, split each symbol into index + Kind and look up its Domain.
//  3. Reject empty or duplicate operator names.
//
// The first error aborts the build; the reader is expected to fail fast.
func Build(decls []Declaration, classes IndexClasses) (*Table, error) {
	// 1. Letter → domain
	domains := make(map[string]Domain)
	add := func(names []string, d Domain) error {
		for _, nm := range names {
			if prev, ok := domains[nm]; ok && prev != d {
				return fmt.Errorf("%w: %q", ErrAmbiguousIndex, nm)
			}
			domains[nm] = d
		}
		return nil
	}
	if err := add(classes.Holes, Hole); err != nil {
		return nil, err
	}
	if err := add(classes.Particles, Particle); err != nil {
		return nil, err
	}
	if err := add(classes.Any, Any); err != nil {
		return nil, err
	}

	t := &Table{ops: make(map[string]*Operator, len(decls))}
	for _, d := range decls {
		// 3. Name checks
		if d.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := t.ops[d.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOperator, d.Name)
		}

		// 2. Symbols
		op := &Operator{Name: d.Name, Factor: d.Factor, Elems: make([]Elementary, 0, len(d.Symbols))}
		for _, sym := range d.Symbols {
			idx, kind, err := ParseSymbol(sym)
			if err != nil {
				return nil, fmt.Errorf("operator %q: %w", d.Name, err)
			}
			dom, ok := domains[idx]
			if !ok {
				return nil, fmt.Errorf("%w %q in operator %q", ErrUnknownIndex, idx, d.Name)
			}
			op.Elems = append(op.Elems, Elementary{Index: idx, Kind: kind, Domain: dom, Owner: d.Name})
		}
		t.ops[d.Name] = op
		t.order = append(t.order, d.Name)
	}

	return t, nil
}

// ParseSymbol splits "p+" into ("p", Creation) and "q" into ("q", Annihilation).
func ParseSymbol(sym string) (string, Kind, error) {
	kind := Annihilation
	idx := sym
	if strings.HasSuffix(sym, "+") {
		kind = Creation
		idx = strings.TrimSuffix(sym, "+")
	}
	if idx == "" || strings.ContainsAny(idx, "+ \t{}") {
		return "", 0, fmt.Errorf("%w: %q", ErrBadSymbol, sym)
	}
	return idx, kind, nil
}

// Lookup returns the operator registered under name.
func (t *Table) Lookup(name string) (*Operator, bool) {
	op, ok := t.ops[name]
	return op, ok
}

// Names returns operator names in declaration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of declared operators.
func (t *Table) Len() int { return len(t.order) }

// Operators resolves every name of the task, in task order.
func (t *Table) Operators(task Task) ([]*Operator, error) {
	ops := make([]*Operator, 0, len(task))
	for _, name := range task {
		op, ok := t.ops[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Elementaries concatenates the elementary operators of the task in order.
// The result is the operator string S whose perfect matchings are enumerated.
func (t *Table) Elementaries(task Task) ([]Elementary, error) {
	ops, err := t.Operators(task)
	if err != nil {
		return nil, err
	}
	var s []Elementary
	for _, op := range ops {
		s = append(s, op.Elems...)
	}
	return s, nil
}

// ProtectedIndices returns the index names of the declared bra and ket.
// They are looked up in the table, not in a particular task.
func (t *Table) ProtectedIndices() map[string]bool {
	out := make(map[string]bool)
	for _, name := range []string{Bra, Ket} {
		if op, ok := t.ops[name]; ok {
			for _, e := range op.Elems {
				out[e.Index] = true
			}
		}
	}
	return out
}

// Expression renders the task as a vacuum expectation value,
// e.g. "<0|{i+ a }1 f {p+ q }{b+ j }|0>".
func (t *Table) Expression(task Task) (string, error) {
	ops, err := t.Operators(task)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("<0|")
	for _, op := range ops {
		sb.WriteString(op.String())
	}
	sb.WriteString("|0>")
	return sb.String(), nil
}
