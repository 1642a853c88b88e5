package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUescape_InvalidEscapeCharacterIsHexDigit(t *testing.T) {
	_, err := scanAll(t, `U&"data" UESCAPE 'A'`)
	require.Error(t, err)
	se := err.(*ScanError)
	assert.Equal(t, ErrInvalidUnicodeEscapeCharacter, se.Code)
}

func TestUescape_InvalidEscapeValueBadHex(t *testing.T) {
	_, err := scanAll(t, `U&"d\12gz"`)
	require.Error(t, err)
	se := err.(*ScanError)
	assert.Equal(t, ErrInvalidUnicodeEscapeValue, se.Code)
}

func TestUescape_PlusSixHexForm(t *testing.T) {
	toks, err := scanAll(t, `U&"d\+000061t\+000061"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "data", toks[0].Text)
}

func TestUescape_DoubledEscapeCharIsLiteral(t *testing.T) {
	toks, err := scanAll(t, `U&"a\\b"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, `a\b`, toks[0].Text)
}
