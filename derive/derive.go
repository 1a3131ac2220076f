package derive

import (
	"slices"

	"github.com/katalvlaran/wick/contract"
	"github.com/katalvlaran/wick/operator"
)

// Sign returns the fermionic sign (+1 or −1) of contraction c over a string
// of length n.
//
// Pairs are folded in generator order. Every position starts active; for a
// pair (i<j) the number of active positions strictly between i and j is the
// number of exchanges needed to make the two operators adjacent, so an odd
// count flips the sign. Both positions are then deactivated.
func Sign(c contract.Contraction, n int) int {
	active := make([]bool, n)
	for k := range active {
		active[k] = true
	}

	sign := 1
	for _, p := range c {
		i, j := p.I, p.J
		if i > j {
			i, j = j, i
		}
		active[i], active[j] = false, false
		between := 0
		for k := i + 1; k < j; k++ {
			if active[k] {
				between++
			}
		}
		if between%2 != 0 {
			sign = -sign
		}
	}

	return sign
}

// Deltas returns one delta per pair of c, in pair order.
func Deltas(s []operator.Elementary, c contract.Contraction) []Delta {
	out := make([]Delta, 0, len(c))
	for _, p := range c {
		out = append(out, NewDelta(s[p.I].Index, s[p.J].Index))
	}
	return out
}

// Labels builds the residual index string of every operator except bra/ket:
// creation indices in declared order, then annihilation indices reversed
// (p+ q+ s r → [p q r s]).
func Labels(ops []*operator.Operator) []Label {
	var out []Label
	for _, op := range ops {
		if op.IsReference() {
			continue
		}
		var creat, annih []string
		for _, e := range op.Elems {
			if e.Kind == operator.Creation {
				creat = append(creat, e.Index)
			} else {
				annih = append(annih, e.Index)
			}
		}
		slices.Reverse(annih)
		out = append(out, Label{
			Factor:  op.Factor,
			Name:    op.Name,
			Indices: append(creat, annih...),
		})
	}
	return out
}

// Canonicalize eliminates summed indices through the deltas.
//
// Self-deltas are dropped. Then, until nothing changes, every label index that
// is not protected and appears in a delta is replaced by that delta's partner:
// the delta is removed and the index is renamed in all labels and remaining
// deltas. Protected indices (bra/ket) are never replaced.
//
// The inputs are not modified. Canonicalizing a canonical expression is a no-op.
func Canonicalize(labels []Label, deltas []Delta, protected map[string]bool) ([]Label, []Delta) {
	outLabels := make([]Label, len(labels))
	for k, l := range labels {
		outLabels[k] = l.Clone()
	}
	outDeltas := normalizeDeltas(deltas)

	for changed := true; changed; {
		changed = false
		for li := 0; li < len(outLabels); li++ {
			for k := 0; k < len(outLabels[li].Indices); k++ {
				idx := outLabels[li].Indices[k]
				if protected[idx] {
					continue
				}
				at := slices.IndexFunc(outDeltas, func(d Delta) bool { return d.Has(idx) })
				if at < 0 {
					continue
				}
				to := outDeltas[at].Other(idx)
				outDeltas = slices.Delete(outDeltas, at, at+1)
				rename(outLabels, idx, to)
				outDeltas = renameDeltas(outDeltas, idx, to)
				changed = true
			}
		}
	}

	return outLabels, outDeltas
}

// Expand processes every contraction of the task and keeps the full trace.
func Expand(tbl *operator.Table, task operator.Task, cs []contract.Contraction) (*Result, error) {
	ops, err := tbl.Operators(task)
	if err != nil {
		return nil, err
	}
	s, err := tbl.Elementaries(task)
	if err != nil {
		return nil, err
	}
	protected := tbl.ProtectedIndices()
	base := Labels(ops)

	res := &Result{Expansions: make([]Expansion, 0, len(cs))}
	for _, c := range cs {
		ex := Expansion{
			Contraction: c,
			Sign:        Sign(c, len(s)),
			RawDeltas:   Deltas(s, c),
		}
		ex.RawLabels = make([]Label, len(base))
		for k, l := range base {
			ex.RawLabels[k] = l.Clone()
		}
		ex.Labels, ex.Deltas = Canonicalize(ex.RawLabels, ex.RawDeltas, protected)

		if len(ex.Labels) == 1 {
			l := ex.Labels[0]
			term := Term{
				Sign:   ex.Sign,
				Factor: l.Factor,
				Tensor: Tensor{Name: l.Name, Indices: slices.Clone(l.Indices)},
				Deltas: slices.Clone(ex.Deltas),
			}
			ex.Term = &term
			res.Terms = append(res.Terms, term)
		} else {
			res.Dropped++
		}
		res.Expansions = append(res.Expansions, ex)
	}

	return res, nil
}

// Derive returns the terms of a task in contraction order.
func Derive(tbl *operator.Table, task operator.Task, cs []contract.Contraction) ([]Term, error) {
	res, err := Expand(tbl, task, cs)
	if err != nil {
		return nil, err
	}
	return res.Terms, nil
}

// normalizeDeltas copies deltas, reorders each pair, drops self-deltas and
// repeated pairs.
func normalizeDeltas(deltas []Delta) []Delta {
	out := make([]Delta, 0, len(deltas))
	for _, d := range deltas {
		d = NewDelta(d.A, d.B)
		if d.IsSelf() || slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func rename(labels []Label, from, to string) {
	for li := range labels {
		for k, idx := range labels[li].Indices {
			if idx == from {
				labels[li].Indices[k] = to
			}
		}
	}
}

func renameDeltas(deltas []Delta, from, to string) []Delta {
	out := make([]Delta, 0, len(deltas))
	for _, d := range deltas {
		if d.A == from {
			d.A = to
		}
		if d.B == from {
			d.B = to
		}
		out = append(out, d)
	}
	return normalizeDeltas(out)
}
