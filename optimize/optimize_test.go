package optimize_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/katalvlaran/wick/derive"
	"github.com/katalvlaran/wick/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// term is a compact constructor for tests.
func term(sign int, factor float64, name string, idx []string, deltas ...derive.Delta) derive.Term {
	return derive.Term{Sign: sign, Factor: factor, Tensor: derive.Tensor{Name: name, Indices: idx}, Deltas: deltas}
}

// TestEquivalent_LockstepPermutation covers matching and non-matching block orders.
func TestEquivalent_LockstepPermutation(t *testing.T) {
	base := term(1, 0.25, "v", []string{"i", "j", "a", "b"})

	assert.True(t, optimize.Equivalent(base, base))
	assert.True(t, optimize.Equivalent(base, term(1, 0.25, "v", []string{"j", "i", "b", "a"})))
	assert.False(t, optimize.Equivalent(base, term(1, 0.25, "v", []string{"i", "j", "b", "a"})), "ket-only swap is antisymmetry, not relabelling")
	assert.False(t, optimize.Equivalent(base, term(1, 0.25, "v", []string{"j", "i", "a", "b"})))
}

// TestEquivalent_Rank3Blocks checks a six-index tensor with a 3-cycle.
func TestEquivalent_Rank3Blocks(t *testing.T) {
	a := term(1, 1, "w", []string{"i", "j", "k", "a", "b", "c"})
	b := term(1, 1, "w", []string{"j", "k", "i", "b", "c", "a"})
	c := term(1, 1, "w", []string{"j", "k", "i", "c", "b", "a"})
	assert.True(t, optimize.Equivalent(a, b))
	assert.True(t, optimize.Equivalent(b, a))
	assert.False(t, optimize.Equivalent(a, c))
}

// TestEquivalent_Rejects covers every guard.
func TestEquivalent_Rejects(t *testing.T) {
	base := term(1, 1, "f", []string{"i", "a"}, derive.NewDelta("j", "b"))
	cases := map[string]derive.Term{
		"rank":   term(1, 1, "f", []string{"i", "a", "j", "b"}, derive.NewDelta("j", "b")),
		"deltas": term(1, 1, "f", []string{"i", "a"}, derive.NewDelta("i", "j")),
		"none":   term(1, 1, "f", []string{"i", "a"}),
		"sign":   term(-1, 1, "f", []string{"i", "a"}, derive.NewDelta("j", "b")),
		"factor": term(1, 2, "f", []string{"i", "a"}, derive.NewDelta("j", "b")),
		"name":   term(1, 1, "g", []string{"i", "a"}, derive.NewDelta("j", "b")),
		"index":  term(1, 1, "f", []string{"j", "a"}, derive.NewDelta("j", "b")),
	}
	for name, other := range cases {
		assert.False(t, optimize.Equivalent(base, other), name)
	}
}

// TestEquivalent_DeltaSets ignores delta order and orientation.
func TestEquivalent_DeltaSets(t *testing.T) {
	a := term(1, 1, "f", []string{"p", "q"}, derive.Delta{A: "a", B: "b"}, derive.Delta{A: "i", B: "j"})
	b := term(1, 1, "f", []string{"p", "q"}, derive.Delta{A: "j", B: "i"}, derive.Delta{A: "a", B: "b"})
	assert.True(t, optimize.Equivalent(a, b))
	assert.True(t, optimize.SameDeltas(nil, []derive.Delta{}))
}

// TestEquivalent_ScalarAndOdd handles rank 0 and odd rank.
func TestEquivalent_ScalarAndOdd(t *testing.T) {
	assert.True(t, optimize.Equivalent(term(1, 1, "e", nil), term(1, 1, "e", []string{})))
	assert.True(t, optimize.Equivalent(term(1, 1, "x", []string{"i", "a", "b"}), term(1, 1, "x", []string{"i", "a", "b"})))
	assert.False(t, optimize.Equivalent(term(1, 1, "x", []string{"i", "a", "b"}), term(1, 1, "x", []string{"i", "b", "a"})))
}

// TestOptimize_FoldsMultiplicity merges two pairs of equivalent terms.
func TestOptimize_FoldsMultiplicity(t *testing.T) {
	in := []derive.Term{
		term(1, 0.25, "v", []string{"i", "j", "a", "b"}),
		term(1, 0.25, "v", []string{"i", "j", "b", "a"}),
		term(1, 0.25, "v", []string{"j", "i", "b", "a"}),
		term(1, 0.25, "v", []string{"j", "i", "a", "b"}),
		term(-1, 1, "v", []string{"i", "j", "a", "b"}),
	}
	out := optimize.Optimize(in)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"i", "j", "a", "b"}, out[0].Tensor.Indices)
	assert.Equal(t, 0.5, out[0].Factor)
	assert.Equal(t, []string{"i", "j", "b", "a"}, out[1].Tensor.Indices)
	assert.Equal(t, 0.5, out[1].Factor)
	assert.Equal(t, 1.0, out[2].Factor)

	// input untouched
	assert.Equal(t, 0.25, in[0].Factor)

	classes := optimize.Classes(in)
	require.Len(t, classes, 3)
	assert.Equal(t, []int{0, 2}, classes[0].Members)
	assert.Equal(t, []int{1, 3}, classes[1].Members)
	assert.Equal(t, 2, classes[1].Multiplicity())
}

// TestOptimize_Empty returns an empty list.
func TestOptimize_Empty(t *testing.T) {
	assert.Empty(t, optimize.Optimize(nil))
}

// TestOptimize_OrderInvariantTotals shuffles the input and compares the
// folded factors per class, keyed by the class signature.
func TestOptimize_OrderInvariantTotals(t *testing.T) {
	in := []derive.Term{
		term(1, 0.5, "v", []string{"i", "j", "a", "b"}, derive.NewDelta("k", "l")),
		term(1, 0.5, "v", []string{"j", "i", "b", "a"}, derive.NewDelta("k", "l")),
		term(1, 0.5, "v", []string{"i", "j", "b", "a"}, derive.NewDelta("k", "l")),
		term(-1, 0.5, "v", []string{"k", "l", "c", "d"}),
		term(-1, 0.5, "v", []string{"l", "k", "d", "c"}),
		term(-1, 0.5, "v", []string{"k", "l", "c", "d"}),
		term(1, 0.5, "v", []string{"j", "i", "a", "b"}, derive.NewDelta("k", "l")),
	}
	ref := totals(optimize.Optimize(in))

	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 50; trial++ {
		shuffled := append([]derive.Term(nil), in...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		out := optimize.Optimize(shuffled)
		assert.Len(t, out, 3)
		assert.Equal(t, ref, totals(out))
	}
}

// totals returns the sorted signed folded factors.
func totals(terms []derive.Term) []float64 {
	out := make([]float64, len(terms))
	for k, t := range terms {
		out[k] = t.Value()
	}
	sort.Float64s(out)
	return out
}

// BenchmarkEquivalent_Rank6 measures the worst-case permutation search.
func BenchmarkEquivalent_Rank6(b *testing.B) {
	x := term(1, 1, "w", []string{"i", "j", "k", "a", "b", "c"})
	y := term(1, 1, "w", []string{"k", "j", "i", "b", "a", "c"})
	for i := 0; i < b.N; i++ {
		optimize.Equivalent(x, y)
	}
}
