package scanner

import (
	"unicode"

	"github.com/smasher164/xid"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isIdentStart reports whether r may open an identifier: ASCII letters and
// underscore, plus anything Unicode considers a valid identifier start
// (covers multibyte identifiers), mirroring the teacher's use of
// github.com/smasher164/xid for the same purpose.
func isIdentStart(r rune) bool {
	if r == '_' {
		return true
	}
	if r < utf8RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return xid.Start(r)
}

// isIdentCont reports whether r may continue an identifier once started.
func isIdentCont(r rune) bool {
	if r == '_' || r == '$' {
		return true
	}
	if r < utf8RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(byte(r))
	}
	return xid.Continue(r) || unicode.Is(unicode.Cf, r)
}

const utf8RuneSelf = 0x80
