// Package code defines LinearCode, a read-only view of a binary linear code
// given by a full-rank generator matrix.
//
// What:
//
//   - New(G) wraps a gf2.Matrix whose rows are linearly independent; it fails
//     with ErrRank otherwise.
//   - Length() is the column count, Dimension() the row count.
//   - Codewords() iterates all 2^k codewords in Gray-code order, one XOR per step.
//   - WeightDistribution, MinimumDistance, IsSelfOrthogonal, IsDoublyEven,
//     DivisibleBy and Dual answer the usual coding-theory questions.
//
// A LinearCode never exposes its matrix for mutation: GeneratorMatrix returns a copy.
//
// Complexity:
//
//   - New: O(k²·w) for the rank check.
//   - Codewords / WeightDistribution / MinimumDistance: O(2^k·w).
package code
