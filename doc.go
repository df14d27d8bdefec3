// Package socodes enumerates self-orthogonal binary linear codes up to
// permutation equivalence, one representative per class.
//
// 🚀 What is socodes?
//
//	A pure-Go toolkit for small coding-theory censuses:
//		• GF(2) primitives: packed vectors, matrices, RREF, null spaces
//		• Linear codes: weights, minimum distance, duals, divisibility
//		• Classification: canonical forms & canonical augmentation
//		• Enumeration: lazy, cancellable, optionally seed-parallel
//		• Catalog: SQLite store of runs and their representatives
//
// ✨ Why socodes?
//
//   - Isomorph-free by construction – no global "seen" set, no duplicates
//   - Lazy – range over the result and stop whenever you like
//   - Pure Go – the catalog uses a cgo-free SQLite driver
//   - Hookable – OnVisit observes every search node
//
// Packages:
//
//	gf2/          Vector, Matrix, Basis; rank, RREF, null space
//	code/         LinearCode: codewords, weight distribution, dual
//	classify/     Canonical, Key, Equivalent; Classifier.Children
//	enumerate/    SelfOrthogonal, Collect, CollectParallel, Tally
//	catalog/      Store: runs, codes, canonical-key deduplication
//	cmd/socodes/  CLI: enumerate, runs, show
//
// Quick example (doubly-even codes, length ≤ 7, dimension ≤ 3):
//
//	seq, _ := enumerate.SelfOrthogonal(7, 3, enumerate.WithDoublyEven())
//	for c, err := range seq {
//		if err != nil { ... }
//		fmt.Println(c) // [4, 1], [6, 2], [7, 3]
//	}
//
//	go install github.com/katalvlaran/socodes/cmd/socodes@latest
package socodes
