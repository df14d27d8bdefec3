// Package catalog persists enumeration runs and their code representatives in
// a SQLite database.
//
// A run records the parameters of one enumeration (n, k, b, exact) and, once
// finished, the number of codes it produced. Each stored code carries its
// shape, canonical key, generator rows, minimum distance and weight
// distribution; within a run canonical keys are unique, so the table holds
// one representative per permutation class.
//
// The driver is the pure-Go modernc.org/sqlite, registered as "sqlite".
// A Store is safe for concurrent use.
package catalog
