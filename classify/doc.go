// Package classify decides permutation equivalence of binary linear codes and
// generates canonical one-row extensions for isomorph-free enumeration.
//
// What:
//
//   - Canonical(G): the canonical generator matrix of the code spanned by G.
//     Two generator matrices span permutation-equivalent codes if and only if
//     their canonical matrices are identical, so Key(G) is a complete invariant.
//   - Classifier.Children(parent, cols, b): every code obtained from parent by
//     adding `cols - parent.Cols()` coordinates and one generator row that is
//     1 on all of them, which stays self-orthogonal with weights divisible by b.
//     Exactly one representative per equivalence class is returned, and only
//     when parent is that class's canonical parent, so a recursive search that
//     starts from the repetition codes meets every class exactly once.
//
// How:
//
//   - Canonical form: over all ordered bases (g1, …, gk) of the code, refine the
//     coordinate partition one row at a time (ones before zeros) and keep the
//     basis whose sequence of per-cell one-counts is lexicographically largest.
//     Ties are explored exhaustively; larger prefixes prune smaller ones.
//     Sorting columns by final cell yields columns in descending numeric order
//     (row 1 is the most significant bit).
//   - Candidate rows: w = (u | 1…1) with u ranging over coset representatives of
//     the parent code P inside its dual P⊥. Words in the same coset span the
//     same child, so each child code is built once per coset.
//   - Canonical parent: shorten the canonical child on its last coordinate and
//     restrict to the support. A child is kept only if that parent is
//     equivalent to the parent it was generated from.
//
// Complexity:
//
//   - Canonical: O(L·2^k·n) where L is the number of explored tie branches
//     (bounded by the automorphism group order of the code).
//   - Children: O(2^(m-2r)) canonical forms for a parent with m columns and r rows.
//
// A Classifier holds no mutable state and is safe for concurrent use.
package classify
