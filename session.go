// Package pgscan wires the scanner package together with file-based
// configuration and structured logging, the way the rest of this
// codebase assembles a collaborator-driven component into something a
// CLI or batch job can drive directly.
package pgscan

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/pgscan/scanner"
)

// Session is the producer-facing entry point: init a file's worth of SQL
// text, pull tokens one at a time, and ask for an error position when
// something goes wrong. It owns one scanner.Scanner and the Diagnostics
// that scanner reports through.
type Session struct {
	File   scanner.FileRef
	sc     *scanner.Scanner
	diag   *LogrusDiagnostics
	errPos int
	err    error
}

// NewSession creates a Session with cfg and enc applied and warnings
// routed to logger, tagged with fields (see NewLogrusDiagnostics). A nil
// enc falls back to scanner.DefaultEncodingOracle.
func NewSession(file scanner.FileRef, input string, cfg scanner.Config, enc scanner.EncodingOracle, logger logrus.FieldLogger, fields logrus.Fields) *Session {
	if enc == nil {
		enc = scanner.DefaultEncodingOracle
	}
	diag := NewLogrusDiagnostics(logger, fields)
	sc := scanner.NewScanner(file, input).WithConfig(cfg).WithEncoding(enc).WithDiagnostics(diag)
	return &Session{File: file, sc: sc, diag: diag}
}

// NextToken returns the next token, or a non-nil error once scanning
// cannot continue. After an error, further calls return the same error.
func (s *Session) NextToken() (scanner.Token, error) {
	if s.err != nil {
		return scanner.Token{}, s.err
	}
	tok, err := s.sc.NextToken()
	if err != nil {
		s.err = err
		if se, ok := err.(*scanner.ScanError); ok {
			s.errPos = s.sc.ErrorPosition(se.Offset)
		}
		return scanner.Token{}, err
	}
	return tok, nil
}

// ErrorPosition reports the 1-based codepoint position of the most
// recent error, or 0 if none occurred.
func (s *Session) ErrorPosition() int { return s.errPos }

// Finish releases the session's scanner buffers.
func (s *Session) Finish() {
	s.sc.Finish()
}

// Tokens drains the session to EOF or the first error, returning every
// token scanned so far either way.
func (s *Session) Tokens() ([]scanner.Token, error) {
	var toks []scanner.Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return toks, err
		}
		if tok.Kind == scanner.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// ParseErrors aggregates one error per scanned file, in the style this
// codebase uses for reporting a batch of independent failures at once
// rather than stopping at the first one.
type ParseErrors struct {
	Errors []*scanner.ScanError
}

func (e ParseErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("pgscan: scan errors:\n\n")
	for _, se := range e.Errors {
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", se.Pos.File, se.Pos.Line, se.Pos.Col, se.Error()))
	}
	return msg.String()
}
