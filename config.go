package pgscan

import (
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/vippsas/pgscan/scanner"
)

// FileConfig is the on-disk shape of pgscan.yaml: the handful of server
// behaviors that change how literals and identifiers are scanned. Field
// names mirror the postgresql.conf settings they stand in for.
type FileConfig struct {
	StandardConformingStrings bool   `yaml:"standard_conforming_strings"`
	BackslashQuote            string `yaml:"backslash_quote"`
	EscapeStringWarning       bool   `yaml:"escape_string_warning"`
	NameDataLen               int    `yaml:"name_data_len"`
	ServerEncodingUTF8        bool   `yaml:"server_encoding_utf8"`
}

// LoadConfig reads pgscan.yaml from directory and converts it into a
// scanner.Config plus the scanner.EncodingOracle that goes with it. A
// missing file is not an error: it simply yields scanner.DefaultConfig()
// and scanner.DefaultEncodingOracle, so running the CLI against a bare
// directory of .sql files works with no setup.
func LoadConfig(directory string) (scanner.Config, scanner.EncodingOracle, error) {
	filename := path.Join(directory, "pgscan.yaml")
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return scanner.DefaultConfig(), scanner.DefaultEncodingOracle, nil
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return scanner.Config{}, nil, err
	}

	var fc FileConfig
	fc.StandardConformingStrings = true
	fc.EscapeStringWarning = true
	fc.ServerEncodingUTF8 = true
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return scanner.Config{}, nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	policy, err := parseBackslashQuotePolicy(fc.BackslashQuote)
	if err != nil {
		return scanner.Config{}, nil, err
	}

	cfg := scanner.DefaultConfig()
	cfg.StandardConformingStrings = fc.StandardConformingStrings
	cfg.BackslashQuote = policy
	cfg.EscapeStringWarning = fc.EscapeStringWarning
	if fc.NameDataLen > 0 {
		cfg.NameDataLen = fc.NameDataLen
	}
	enc := scanner.FixedEncodingOracle(fc.ServerEncodingUTF8)
	return cfg, enc, nil
}

func parseBackslashQuotePolicy(s string) (scanner.BackslashQuotePolicy, error) {
	switch s {
	case "", "safe_encoding":
		return scanner.BackslashQuoteSafeEncoding, nil
	case "on":
		return scanner.BackslashQuoteOn, nil
	case "off":
		return scanner.BackslashQuoteOff, nil
	default:
		return 0, errors.New("backslash_quote must be one of \"on\", \"off\", \"safe_encoding\"")
	}
}
