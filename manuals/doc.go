// Package manuals navigates the host's hierarchical documentation corpus.
//
// A [Store] owns the corpus itself; this package only reads it. The
// [Navigator] adds the recovery behavior the calling agent needs: a
// user-level node-not-found condition raised by the store is absorbed and
// its message returned as ordinary textual content, because the caller is
// a non-interactive agent that can only reason over text, not exception
// objects. A manual absent from the store yields an empty node list, not
// an error.
package manuals
