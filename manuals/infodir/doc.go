// Package infodir implements a manuals.Store over a directory of Info
// files. Each *.info file is one manual; nodes are parsed on every call
// so edits to the files are visible immediately.
package infodir
