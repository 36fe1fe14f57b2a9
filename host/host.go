package host

import (
	"context"
	"errors"
)

// Common errors for host access.
var (
	// ErrUnitNotFound is returned by Sources when a source unit does not
	// exist or cannot be read.
	ErrUnitNotFound = errors.New("source unit not found")
)

// Kind classifies a symbol in the host's symbol table.
type Kind string

// Symbol kinds understood by the host.
const (
	KindFunction Kind = "function"
	KindVariable Kind = "variable"
	KindFace     Kind = "face"
	KindUnknown  Kind = "unknown"
)

// Language tags a source unit with the boundary-detection rule that applies
// to it. The set is closed: extraction has exactly one handler per tag and
// never guesses a rule for anything else.
type Language string

// Recognized source languages.
const (
	// LangBracket marks bracket-structured sources: a definition is one
	// balanced top-level form.
	LangBracket Language = "bracket"

	// LangBlock marks block-structured sources: a definition is a
	// declaration followed by a brace-delimited body.
	LangBlock Language = "block"

	// LangUnsupported marks sources no extraction rule exists for.
	LangUnsupported Language = "unsupported"
)

// Symbol is a named, classified entry in the host's symbol table.
// Pure value; copies are independent.
type Symbol struct {
	Name string
	Kind Kind
}

// Location identifies where a definition starts inside a source unit.
// Locations are ephemeral: they are computed per request and must not be
// cached, because the underlying host state may change between requests.
type Location struct {
	// Unit identifies the source unit, in whatever form the host's
	// Sources implementation understands.
	Unit string

	// Offset is the byte offset of the definition's first character.
	Offset int

	// Language selects the boundary rule used to extract the definition.
	Language Language
}

// Registry is the host's live symbol table.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: unresolvable names are reported through return values, never errors.
// - Liveness: results reflect the table at call time; no caching is implied.
type Registry interface {
	// Exists reports whether a symbol with the given name is interned.
	Exists(name string) bool

	// KindOf returns the kind of the named symbol. The second return is
	// false when the symbol is absent.
	KindOf(name string) (Kind, bool)

	// Symbols enumerates all symbol names in the registry's native order.
	// Callers must not assume the order is sorted.
	Symbols() []string
}

// Resolver is the host's definition-finding facility.
//
// Contract:
// - Errors: any failure to resolve is reported as ok=false, never an error.
// - Liveness: the returned Location is valid only until host state changes.
type Resolver interface {
	// Resolve maps a symbol name and kind to the location of its
	// definition. KindUnknown matches a definition of any kind.
	Resolve(name string, kind Kind) (Location, bool)
}

// Sources provides read access to source unit text.
//
// Contract:
// - Errors: a missing unit returns ErrUnitNotFound.
// - Ownership: the returned text is a caller-owned snapshot.
type Sources interface {
	// Unit returns the full text of the identified source unit.
	Unit(id string) (string, error)
}

// Evaluator is the host's evaluation primitive. Its execution semantics are
// entirely the host's; this module only gates access behind explicit
// operator confirmation.
//
// Contract:
// - Context: implementations should return ctx.Err() when ctx is already done.
// - Errors: evaluation failures are ordinary errors; the dispatcher
//   normalizes them at its boundary.
type Evaluator interface {
	// Eval evaluates a host expression and returns its printed result.
	Eval(ctx context.Context, form string) (string, error)
}
