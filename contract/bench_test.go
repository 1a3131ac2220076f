package contract_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wick/contract"
	"github.com/katalvlaran/wick/operator"
)

// doublesString builds <0| {i+ j+ b a} {p+ q+ s r} {c+ d+ l k} |0>.
func doublesString() []operator.Elementary {
	h, p, a := operator.Hole, operator.Particle, operator.Any
	cr, an := operator.Creation, operator.Annihilation
	return []operator.Elementary{
		el("i", cr, h, "bra"), el("j", cr, h, "bra"), el("b", an, p, "bra"), el("a", an, p, "bra"),
		el("p", cr, a, "v"), el("q", cr, a, "v"), el("s", an, a, "v"), el("r", an, a, "v"),
		el("c", cr, p, "ket"), el("d", cr, p, "ket"), el("l", an, h, "ket"), el("k", an, h, "ket"),
	}
}

// BenchmarkAll enumerates unfiltered matchings.
func BenchmarkAll(b *testing.B) {
	for _, n := range []int{8, 10, 12} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				contract.Count(contract.All(n))
			}
		})
	}
}

// BenchmarkValid_Doubles enumerates the pruned doubles string (n = 12).
func BenchmarkValid_Doubles(b *testing.B) {
	s := doublesString()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contract.Count(contract.Valid(s))
	}
}
