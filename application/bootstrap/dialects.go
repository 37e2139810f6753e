package bootstrap

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

// JavaScriptDialect declares each binding with var and deletes the slot.
func JavaScriptDialect() entities.Dialect {
	return entities.Dialect{
		Name:    "javascript",
		Declare: `var {{.ScriptName}} = {{.Slot}}[{{.Original}}];`,
		Release: `delete {{.Slot}};`,
		Quote:   QuoteJSON,
	}
}

// LuaDialect assigns each binding to a global and sets the slot to nil.
func LuaDialect() entities.Dialect {
	return entities.Dialect{
		Name:    "lua",
		Declare: `{{.ScriptName}} = {{.Slot}}[{{.Original}}]`,
		Release: `{{.Slot}} = nil`,
		Quote:   QuoteLua,
	}
}

// QuoteJSON renders s as a double-quoted JSON string, which is also a valid
// JavaScript string literal: control characters, quotes, backslashes, HTML
// metacharacters, and the U+2028/U+2029 line terminators are escaped.
func QuoteJSON(s string) string {
	// Marshal never fails for a string; invalid UTF-8 becomes U+FFFD.
	b, _ := json.Marshal(s)
	return string(b)
}

// QuoteLua renders s as a double-quoted Lua string literal. Quotes and
// backslashes are backslash-escaped; every byte outside printable ASCII is
// written as a three-digit decimal escape.
func QuoteLua(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			d := strconv.Itoa(int(c))
			b.WriteString(strings.Repeat("0", 3-len(d)))
			b.WriteString(d)
		}
	}
	b.WriteByte('"')
	return b.String()
}
