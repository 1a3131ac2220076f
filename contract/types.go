package contract

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wick/operator"
)

// Pair joins the operators at positions I < J of the operator string.
type Pair struct {
	I, J int
}

// Contraction is a perfect matching, pairs in generator order.
type Contraction []Pair

// String renders "(0,3)(1,4)(2,5)".
func (c Contraction) String() string {
	var sb strings.Builder
	for _, p := range c {
		fmt.Fprintf(&sb, "(%d,%d)", p.I, p.J)
	}
	return sb.String()
}

// Labels returns, for a string of length n, the 1-based number of the pair
// each position belongs to (0 for unpaired positions).
func (c Contraction) Labels(n int) []int {
	labels := make([]int, n)
	for k, p := range c {
		if p.I < n {
			labels[p.I] = k + 1
		}
		if p.J < n {
			labels[p.J] = k + 1
		}
	}
	return labels
}

// Violation names the rule that makes a pair vanish.
type Violation int

const (
	// ViolationNone means the pair may be non-zero.
	ViolationNone Violation = iota

	// ViolationSameOwner: both operators come from one normal-ordered operator.
	ViolationSameOwner

	// ViolationSameKind: two creators or two annihilators.
	ViolationSameKind

	// ViolationHoleOrder: hole annihilator left of a hole creator.
	ViolationHoleOrder

	// ViolationParticleOrder: particle creator left of a particle annihilator.
	ViolationParticleOrder
)

// String returns a short human-readable rule name.
func (v Violation) String() string {
	switch v {
	case ViolationNone:
		return "none"
	case ViolationSameOwner:
		return "same operator"
	case ViolationSameKind:
		return "same kind"
	case ViolationHoleOrder:
		return "i j+ (hole)"
	case ViolationParticleOrder:
		return "a+ b (particle)"
	}
	return fmt.Sprintf("Violation(%d)", int(v))
}

// Check returns the first rule violated by contracting left with right,
// where left stands before right in the operator string.
func Check(left, right operator.Elementary) Violation {
	if left.Owner == right.Owner {
		return ViolationSameOwner
	}
	if left.Kind == right.Kind {
		return ViolationSameKind
	}
	if left.Kind == operator.Annihilation && left.Domain == operator.Hole && right.Domain == operator.Hole {
		return ViolationHoleOrder
	}
	if left.Kind == operator.Creation && left.Domain == operator.Particle && right.Domain == operator.Particle {
		return ViolationParticleOrder
	}
	return ViolationNone
}

// Allowed reports whether the pair survives every rule.
func Allowed(left, right operator.Elementary) bool {
	return Check(left, right) == ViolationNone
}

// DoubleFactorial returns n!! = n·(n−2)·…, with n!! = 1 for n ≤ 0.
func DoubleFactorial(n int) uint64 {
	var r uint64 = 1
	for k := n; k > 1; k -= 2 {
		r *= uint64(k)
	}
	return r
}

// CountAll is the number of perfect matchings over n positions:
// (n−1)!! for even n and 0 for odd n.
func CountAll(n int) uint64 {
	if n < 0 || n%2 != 0 {
		return 0
	}
	return DoubleFactorial(n - 1)
}
