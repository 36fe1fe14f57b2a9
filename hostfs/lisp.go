package hostfs

import (
	"regexp"

	"github.com/hostlens-dev/hostlens/host"
)

// defFormRe matches a top-level Lisp definition form at the start of a
// line. Group 1 is the definer, group 2 the defined name.
var defFormRe = regexp.MustCompile(`(?m)^\((defun|defmacro|defsubst|defvar|defconst|defcustom|defface)\s+([^\s()]+)`)

// definerKinds maps a definer to the kind of symbol it interns.
var definerKinds = map[string]host.Kind{
	"defun":     host.KindFunction,
	"defmacro":  host.KindFunction,
	"defsubst":  host.KindFunction,
	"defvar":    host.KindVariable,
	"defconst":  host.KindVariable,
	"defcustom": host.KindVariable,
	"defface":   host.KindFace,
}

// scanLisp indexes the top-level definition forms of one Lisp unit. The
// location offset is the opening paren of the form, where balanced-form
// extraction starts.
func scanLisp(unit string, raw []byte) ([]entry, error) {
	matches := defFormRe.FindAllSubmatchIndex(raw, -1)
	entries := make([]entry, 0, len(matches))
	for _, m := range matches {
		definer := string(raw[m[2]:m[3]])
		name := string(raw[m[4]:m[5]])
		entries = append(entries, entry{
			symbol: host.Symbol{Name: name, Kind: definerKinds[definer]},
			location: host.Location{
				Unit:     unit,
				Offset:   m[0],
				Language: host.LangBracket,
			},
		})
	}
	return entries, nil
}
