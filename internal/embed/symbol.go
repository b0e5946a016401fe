package embed

import (
	"errors"
	"path"
	"strings"
)

// ErrInvalidSymbol is returned for names that aren't C identifiers
var ErrInvalidSymbol = errors.New("embed: invalid C identifier")

// ValidSymbol reports whether s matches [A-Za-z_][A-Za-z0-9_]*
func ValidSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Symbol derives the C identifier for an embedded document from its path:
// README.md becomes README_MD. The size constant is the symbol with a _SIZE
// suffix.
func Symbol(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	var sb strings.Builder
	for i := 0; i < len(base); i++ {
		c := base[i]
		switch {
		case c >= 'a' && c <= 'z':
			sb.WriteByte(c - 'a' + 'A')
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			sb.WriteByte(c)
		default:
			sb.WriteByte('_')
		}
	}
	symbol := sb.String()
	if symbol == "" || (symbol[0] >= '0' && symbol[0] <= '9') {
		symbol = "_" + symbol
	}
	return symbol
}
