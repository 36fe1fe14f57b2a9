// Package hostfs provides a filesystem-backed symbol provider. It scans
// a source tree for definitions the way a live interpreter's loaddefs
// would, indexing Lisp definition forms and C function definitions, and
// serves both the symbol table and the unit text behind it.
//
// The tree is rescanned on every query. That keeps results consistent
// with a source tree that is edited while the server runs, at the cost
// of re-reading files; trees of interpreter sources are small enough
// that this stays cheap.
package hostfs
