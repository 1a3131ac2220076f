package derive

import (
	"slices"
	"strings"

	"github.com/katalvlaran/wick/contract"
	"github.com/katalvlaran/wick/operator"
)

// Delta is a Kronecker delta δ_AB with A <= B.
type Delta struct {
	A, B string
}

// NewDelta orders the two names lexicographically.
func NewDelta(x, y string) Delta {
	if y < x {
		x, y = y, x
	}
	return Delta{A: x, B: y}
}

// IsSelf reports δ_pp, which is identically one.
func (d Delta) IsSelf() bool { return d.A == d.B }

// Has reports whether name is one of the two indices.
func (d Delta) Has(name string) bool { return d.A == name || d.B == name }

// Other returns the partner of name (name itself if absent).
func (d Delta) Other(name string) string {
	switch name {
	case d.A:
		return d.B
	case d.B:
		return d.A
	}
	return name
}

// String renders d_ij.
func (d Delta) String() string { return "d_" + d.A + d.B }

// Label is the index string of one operator left between bra and ket.
type Label struct {
	Factor  float64
	Name    string
	Indices []string
}

// Clone returns a deep copy.
func (l Label) Clone() Label {
	l.Indices = slices.Clone(l.Indices)
	return l
}

// String renders "1 f [ p q ]".
func (l Label) String() string {
	var sb strings.Builder
	sb.WriteString(operator.FormatFactor(l.Factor))
	sb.WriteByte(' ')
	writeTensor(&sb, l.Name, l.Indices)
	return sb.String()
}

// Tensor is a named matrix element with its ordered indices.
type Tensor struct {
	Name    string
	Indices []string
}

// Rank is the number of indices.
func (t Tensor) Rank() int { return len(t.Indices) }

// Term is one signed contribution to a matrix element.
type Term struct {
	Sign   int
	Factor float64
	Tensor Tensor
	Deltas []Delta
}

// Clone returns a deep copy.
func (t Term) Clone() Term {
	t.Tensor.Indices = slices.Clone(t.Tensor.Indices)
	t.Deltas = slices.Clone(t.Deltas)
	return t
}

// Value is the signed numeric prefactor.
func (t Term) Value() float64 { return float64(t.Sign) * t.Factor }

// String renders "+ 1 f [ i a ] d_ij".
func (t Term) String() string {
	var sb strings.Builder
	sb.WriteString(signString(t.Sign))
	sb.WriteByte(' ')
	sb.WriteString(operator.FormatFactor(t.Factor))
	sb.WriteByte(' ')
	writeTensor(&sb, t.Tensor.Name, t.Tensor.Indices)
	writeDeltas(&sb, t.Deltas)
	return sb.String()
}

// Expansion records how one contraction was processed.
type Expansion struct {
	// Contraction is the input matching.
	Contraction contract.Contraction

	// Sign is the fermionic sign of the matching.
	Sign int

	// RawLabels and RawDeltas are the expression before canonicalization.
	RawLabels []Label
	RawDeltas []Delta

	// Labels and Deltas are the canonical expression.
	Labels []Label
	Deltas []Delta

	// Term is nil when the contraction does not leave exactly one tensor.
	Term *Term
}

// Raw renders the pre-canonical expression.
func (e Expansion) Raw() string { return formatExpr(e.Sign, e.RawLabels, e.RawDeltas) }

// Canonical renders the simplified expression.
func (e Expansion) Canonical() string { return formatExpr(e.Sign, e.Labels, e.Deltas) }

// Result collects the derivation of one task.
type Result struct {
	Expansions []Expansion
	Terms      []Term
	Dropped    int
}

func signString(sign int) string {
	if sign < 0 {
		return "-"
	}
	return "+"
}

func writeTensor(sb *strings.Builder, name string, indices []string) {
	sb.WriteString(name)
	sb.WriteString(" [ ")
	for _, idx := range indices {
		sb.WriteString(idx)
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
}

func writeDeltas(sb *strings.Builder, deltas []Delta) {
	for _, d := range deltas {
		sb.WriteByte(' ')
		sb.WriteString(d.String())
	}
}

func formatExpr(sign int, labels []Label, deltas []Delta) string {
	var sb strings.Builder
	sb.WriteString(signString(sign))
	for _, l := range labels {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	writeDeltas(&sb, deltas)
	return sb.String()
}
