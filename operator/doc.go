// Package operator describes second-quantized operators for wick.
//
// 🚀 What lives here?
//
//	The immutable building blocks every other package consumes:
//	  • Elementary: one creation (p+) or annihilation (q) operator carrying
//	    an index name, a Kind and a Domain (hole, particle, any)
//	  • Operator  : a named, normal-ordered product of elementaries with a
//	    numeric prefactor (f = Σ f_pq p+ q)
//	  • Table     : name → Operator, built once from declarations
//	  • Task      : ordered operator names defining <bra| op1 … opk |ket>
//
// The names "bra" and "ket" are reserved for the excitation operators of the
// reference determinant. Their index names are protected: later stages never
// substitute them away.
//
// ⚙️ Usage:
//
//	classes := operator.IndexClasses{
//	  Holes:     []string{"i", "j"},
//	  Particles: []string{"a", "b"},
//	  Any:       []string{"p", "q"},
//	}
//	tbl, err := operator.Build([]operator.Declaration{
//	  {Name: "bra", Factor: 1, Symbols: []string{"i+", "a"}},
//	  {Name: "f", Factor: 1, Symbols: []string{"p+", "q"}},
//	  {Name: "ket", Factor: 1, Symbols: []string{"b+", "j"}},
//	}, classes)
//	s, err := tbl.Elementaries(operator.Task{"bra", "f", "ket"})
//
// Errors:
//   - ErrEmptyName          declaration without a name.
//   - ErrDuplicateOperator  operator declared twice.
//   - ErrUnknownIndex       index letter absent from every class.
//   - ErrAmbiguousIndex     index letter listed in more than one class.
//   - ErrUnknownOperator    task refers to an undeclared operator.
package operator
