package scanner

import "unicode/utf8"

// NameDataLen is the default maximum identifier length (in bytes,
// including the implicit terminator), matching PostgreSQL's default
// NAMEDATALEN of 64. A Config can override it.
const NameDataLen = 64

// MultibyteValidator is the collaborator the scanner calls through to
// validate literal/identifier bodies once they may contain non-ASCII
// bytes, and to reason about codepoint lengths. The default
// implementation assumes a UTF-8 server encoding.
type MultibyteValidator interface {
	Validate(b []byte) error
	Length(b []byte) int // number of codepoints
}

type utf8Validator struct{}

func (utf8Validator) Validate(b []byte) error {
	if !utf8.Valid(b) {
		return &ScanError{Code: ErrInvalidHexDigit, Message: "invalid byte sequence for encoding \"UTF8\""}
	}
	return nil
}

func (utf8Validator) Length(b []byte) int {
	return utf8.RuneCount(b)
}

// DefaultMultibyteValidator is the scanner's built-in, UTF-8-only
// validator; it is enough for every caller that doesn't need to emulate a
// non-UTF8 server encoding.
var DefaultMultibyteValidator MultibyteValidator = utf8Validator{}

// IdentifierFolder downcases and multibyte-safely truncates identifiers
// to the configured NAMEDATALEN.
type IdentifierFolder interface {
	DowncaseTruncate(text string, maxLen int) string
}

type asciiFolder struct{}

func (asciiFolder) DowncaseTruncate(text string, maxLen int) string {
	lower := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower = append(lower, c)
	}
	return truncateAtRuneBoundary(lower, maxLen-1)
}

func truncateAtRuneBoundary(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	n := maxLen
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n])
}

// DefaultIdentifierFolder lower-cases ASCII and truncates at the nearest
// rune boundary not exceeding NAMEDATALEN-1 bytes.
var DefaultIdentifierFolder IdentifierFolder = asciiFolder{}

// EncodingOracle answers the handful of encoding questions the scanner
// needs in order to decide whether a codepoint or escape is legal.
type EncodingOracle interface {
	ServerIsUTF8() bool
}

type utf8Oracle struct{}

func (utf8Oracle) ServerIsUTF8() bool { return true }

// DefaultEncodingOracle always reports a UTF-8 server, the overwhelmingly
// common case for a modern PostgreSQL install.
var DefaultEncodingOracle EncodingOracle = utf8Oracle{}

// FixedEncodingOracle reports a caller-supplied, unchanging answer to
// ServerIsUTF8, for hosts that read the real server_encoding setting out
// of their own configuration rather than assuming UTF-8.
type FixedEncodingOracle bool

func (f FixedEncodingOracle) ServerIsUTF8() bool { return bool(f) }

// Diagnostics is how the scanner reports warnings and raises hard errors.
// Raise must return a non-nil error; it does not panic or otherwise
// unwind, since NextToken communicates failure through its error return.
type Diagnostics interface {
	Warn(w Warning)
	Raise(e *ScanError) error
}

// discardDiagnostics is the zero-dependency default: warnings are
// dropped, errors are simply returned. Hosts that want warnings surfaced
// (e.g. the CLI) supply their own Diagnostics backed by a real logger.
type discardDiagnostics struct{}

func (discardDiagnostics) Warn(Warning) {}

func (discardDiagnostics) Raise(e *ScanError) error { return e }

// DefaultDiagnostics discards warnings and returns errors unmodified.
var DefaultDiagnostics Diagnostics = discardDiagnostics{}
