package source

import (
	"errors"
	"fmt"

	"github.com/hostlens-dev/hostlens/host"
)

// Extraction errors.
var (
	// ErrUnsupportedLanguage is returned when a location's language tag
	// has no extraction rule.
	ErrUnsupportedLanguage = errors.New("unsupported source language")

	// ErrMalformedSource is returned when a source unit ends before the
	// definition's boundary is found.
	ErrMalformedSource = errors.New("malformed source")
)

// Extractor turns a definition location into the exact source text of the
// definition.
//
// Contract:
// - Determinism: the same unit text and location always yield the same span.
// - Errors: missing units surface the Sources error; an unrecognized
//   language tag returns ErrUnsupportedLanguage.
type Extractor struct {
	sources host.Sources
}

// NewExtractor creates an extractor reading unit text from sources.
func NewExtractor(sources host.Sources) *Extractor {
	return &Extractor{sources: sources}
}

// Extract returns the definition span starting at the location's offset.
func (e *Extractor) Extract(loc host.Location) (string, error) {
	text, err := e.sources.Unit(loc.Unit)
	if err != nil {
		return "", err
	}
	if loc.Offset < 0 || loc.Offset >= len(text) {
		return "", fmt.Errorf("%w: offset %d outside unit %q (%d bytes)",
			ErrMalformedSource, loc.Offset, loc.Unit, len(text))
	}

	switch loc.Language {
	case host.LangBracket:
		return bracketSpan(text, loc.Offset)
	case host.LangBlock:
		return blockSpan(text, loc.Offset)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, loc.Language)
	}
}
