package pgscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/pgscan/scanner"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, enc, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, scanner.DefaultConfig(), cfg)
	assert.Equal(t, scanner.DefaultEncodingOracle, enc)
}

func TestLoadConfig_OverridesFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("standard_conforming_strings: false\nbackslash_quote: \"on\"\nescape_string_warning: false\nname_data_len: 32\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pgscan.yaml"), content, 0o644))

	cfg, enc, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.False(t, cfg.StandardConformingStrings)
	assert.Equal(t, scanner.BackslashQuoteOn, cfg.BackslashQuote)
	assert.False(t, cfg.EscapeStringWarning)
	assert.Equal(t, 32, cfg.NameDataLen)
	assert.True(t, enc.ServerIsUTF8())
}

func TestLoadConfig_ServerEncodingUTF8False(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server_encoding_utf8: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pgscan.yaml"), content, 0o644))

	_, enc, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.False(t, enc.ServerIsUTF8())
}

func TestLoadConfig_RejectsUnknownBackslashQuotePolicy(t *testing.T) {
	dir := t.TempDir()
	content := []byte("backslash_quote: \"maybe\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pgscan.yaml"), content, 0o644))

	_, _, err := LoadConfig(dir)
	assert.Error(t, err)
}
