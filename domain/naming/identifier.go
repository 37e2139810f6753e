package naming

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/reglet-dev/scriptbox/domain/errors"
	"golang.org/x/text/unicode/rangetable"
)

// identStart holds the code points a name may begin with: letters, letter
// numbers, connector punctuation (including '_') and currency symbols
// (including '$').
var identStart = rangetable.Merge(
	unicode.L,
	unicode.Nl,
	unicode.Pc,
	unicode.Sc,
)

// identPart extends identStart with decimal digits and combining marks.
var identPart = rangetable.Merge(
	identStart,
	unicode.Nd,
	unicode.Mn,
	unicode.Mc,
)

// IsValidIdentifier reports whether name is a legal host identifier.
// It does not consider the reserved words of any script runtime.
func IsValidIdentifier(name string) bool {
	return checkIdentifier(name) == ""
}

// ValidateIdentifier returns name unchanged when it is a legal host identifier,
// or an *errors.InvalidIdentifierError naming the offending string.
func ValidateIdentifier(name string) (string, error) {
	if reason := checkIdentifier(name); reason != "" {
		return "", &errors.InvalidIdentifierError{Name: name, Reason: reason}
	}
	return name, nil
}

func checkIdentifier(name string) string {
	if name == "" {
		return "name is empty"
	}
	for i, r := range name {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(name[i:]); size <= 1 {
				return fmt.Sprintf("invalid UTF-8 at byte %d", i)
			}
		}
		if i == 0 {
			if !unicode.Is(identStart, r) {
				return fmt.Sprintf("must not start with %q", r)
			}
			continue
		}
		if !unicode.Is(identPart, r) {
			return fmt.Sprintf("must not contain %q", r)
		}
	}
	return ""
}
