// Package enumerate lists, up to permutation equivalence, the self-orthogonal
// binary linear codes of length at most n and dimension at most k.
//
// What:
//
//   - SelfOrthogonal(n, k, opts...) returns a lazy iter.Seq2 of *code.LinearCode.
//     Every code it yields is self-orthogonal, has full support, has every
//     codeword weight divisible by the divisor b (WithDivisor; 2 by default,
//     4 for doubly-even codes) and is inequivalent to every other yielded code.
//   - WithExactSize restricts the output to codes of length exactly n and
//     dimension exactly k, pruning branches that can no longer reach that size.
//   - Collect and CollectParallel materialise the sequence; the parallel
//     variant walks seed subtrees concurrently and returns the same slice.
//
// How:
//
//	The search starts from the repetition codes 1…1 of length b, 2b, … ≤ n.
//	At each node the code is tested for output, then, unless it already has
//	dimension k, extended through the ChildGenerator (classify.Classifier by
//	default) to every column count in (cols, n]. Isomorph rejection is entirely
//	the generator's job; the walker never compares codes.
//
// Errors:
//
//   - ErrInvalidParameter: b is not a positive even integer. Reported by
//     SelfOrthogonal itself, before any sequence exists.
//   - Errors from the generator, the code view or a cancelled context are
//     yielded once as (nil, err) and end the sequence.
//
// Complexity:
//
//	Proportional to the number of search nodes times the cost of one
//	Children call; depth is at most k.
package enumerate
