package pgscan

import (
	"github.com/sirupsen/logrus"

	"github.com/vippsas/pgscan/scanner"
)

// LogrusDiagnostics routes scanner warnings through a logrus logger and
// lets hard errors pass through unmodified, mirroring how the rest of
// this codebase reports progress through a shared FieldLogger rather
// than writing to stdout directly.
type LogrusDiagnostics struct {
	Logger logrus.FieldLogger
	Fields logrus.Fields
}

// NewLogrusDiagnostics builds a Diagnostics that logs warnings at Warn
// level, tagged with fields (typically the source file name and a
// session id) so multi-file scans can be told apart in aggregate logs.
func NewLogrusDiagnostics(logger logrus.FieldLogger, fields logrus.Fields) *LogrusDiagnostics {
	return &LogrusDiagnostics{Logger: logger, Fields: fields}
}

func (d *LogrusDiagnostics) Warn(w scanner.Warning) {
	d.Logger.WithFields(d.Fields).WithFields(logrus.Fields{
		"line": w.Pos.Line,
		"col":  w.Pos.Col,
		"code": int(w.Code),
	}).Warn(w.String())
}

func (d *LogrusDiagnostics) Raise(e *scanner.ScanError) error {
	d.Logger.WithFields(d.Fields).WithFields(logrus.Fields{
		"line": e.Pos.Line,
		"col":  e.Pos.Col,
		"code": int(e.Code),
	}).Debug("scan error raised")
	return e
}
