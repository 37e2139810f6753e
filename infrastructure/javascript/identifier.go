package javascript

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// ECMAScript IdentifierStart: letters, letter numbers, '$' and '_'.
var identStart = rangetable.Merge(
	unicode.L,
	unicode.Nl,
	rangetable.New('$', '_'),
)

// IdentifierPart adds digits, combining marks, connectors, ZWNJ and ZWJ.
var identPart = rangetable.Merge(
	identStart,
	unicode.Nd,
	unicode.Mn,
	unicode.Mc,
	unicode.Pc,
	rangetable.New('\u200c', '\u200d'),
)

// IsIdentifier implements ports.IdentifierChecker. Host currency symbols
// other than '$' are not JavaScript identifier characters.
func (r *Runtime) IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		table := identPart
		if i == 0 {
			table = identStart
		}
		if !unicode.Is(table, c) {
			return false
		}
	}
	return true
}
