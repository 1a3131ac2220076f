// Package contract enumerates the full contractions of an operator string.
//
// 🚀 What is a contraction?
//
//	Wick's theorem writes the vacuum expectation value of a product of
//	normal-ordered operators as a signed sum over every way to pair all of
//	their elementary creation/annihilation operators. Each pairing is a
//	perfect matching over the positions 0…n-1 of the operator string.
//
// ✨ Key features:
//   - All(n)  : every perfect matching, (n−1)!! of them for even n
//   - Valid(s): only the a-priori non-zero matchings of a concrete string;
//     forbidden pairs are pruned inside the recursion, so dead branches are
//     never expanded
//   - Check   : the four vanishing rules, in order:
//     1. both operators belong to the same normal-ordered operator
//     2. creation–creation or annihilation–annihilation
//     3. hole annihilator left of a hole creator (i j+)
//     4. particle creator left of a particle annihilator (a+ b)
//
// Any-domain indices satisfy either side of rules 3 and 4.
//
// ⚙️ Usage:
//
//	for c := range contract.Valid(s) {
//	  fmt.Println(c) // (0,3)(1,4)(2,5)
//	}
//
// The recursion always pairs the smallest unpaired position with every larger
// unpaired one, in increasing order, so matchings come out in a fixed order
// and every Pair has I < J.
//
// Complexity:
//
//   - Time:   O((n−1)!!) worst case, far less after pruning.
//   - Memory: O(n) besides the yielded contractions.
package contract
