// Package symbols adapts the host's symbol table for tool consumption.
//
// [Adapter] answers existence and kind queries; [Filter] performs
// component-wise fuzzy completion over the table's names. Both are
// side-effect-free reads of live host state: an absent symbol is an
// ordinary negative answer, never an error.
package symbols
