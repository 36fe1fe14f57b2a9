// Package source turns symbols into exact definition source spans.
//
// [Locator] resolves a symbol and kind to a host location through the
// host's own definition-finding facility; any failure to resolve is a
// not-found answer, never an error. [Extractor] then applies the one
// boundary rule selected by the location's language tag:
//
//   - host.LangBracket: balanced-delimiter scan of exactly one top-level
//     form, from the location offset to the matching close.
//   - host.LangBlock: skip the declaration through its parameter list,
//     then the brace-delimited body, then an immediately following
//     statement delimiter when present.
//   - host.LangUnsupported: fails with [ErrUnsupportedLanguage]; no
//     boundary rule is ever guessed.
//
// Extraction is deterministic and idempotent: re-locating the same symbol
// and re-extracting yields an identical span as long as the underlying
// host state has not changed.
package source
