package pgscan

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/pgscan/scanner"
)

func TestSession_TokensDrainsToEOF(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sess := NewSession("t.sql", "select 1;", scanner.DefaultConfig(), scanner.DefaultEncodingOracle, logger, logrus.Fields{"file": "t.sql"})
	defer sess.Finish()

	toks, err := sess.Tokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, scanner.Keyword, toks[0].Kind)
	assert.Equal(t, scanner.IConst, toks[1].Kind)
	assert.Equal(t, scanner.Self, toks[2].Kind)
}

func TestSession_ErrorPositionAfterHardError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sess := NewSession("t.sql", "select /* never closes", scanner.DefaultConfig(), scanner.DefaultEncodingOracle, logger, logrus.Fields{"file": "t.sql"})
	defer sess.Finish()

	_, err := sess.Tokens()
	require.Error(t, err)
	assert.Greater(t, sess.ErrorPosition(), 0)
}

func TestSession_WarningsRouteThroughLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := scanner.DefaultConfig()
	cfg.StandardConformingStrings = false
	cfg.BackslashQuote = scanner.BackslashQuoteSafeEncoding
	sess := NewSession("t.sql", `'it\'s ok'`, cfg, scanner.DefaultEncodingOracle, logger, logrus.Fields{"file": "t.sql"})
	defer sess.Finish()

	_, err := sess.Tokens()
	require.NoError(t, err)
	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
