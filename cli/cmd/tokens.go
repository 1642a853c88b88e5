package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/pgscan"
	"github.com/vippsas/pgscan/scanner"
)

var (
	tokensCmd = &cobra.Command{
		Use:   "tokens [file.sql ...]",
		Short: "Scan SQL source and print its token stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := uuid.NewV4()
			if err != nil {
				return fmt.Errorf("generating session id: %w", err)
			}

			cfg, enc, err := pgscan.LoadConfig(directory)
			if err != nil {
				return err
			}

			files, err := resolveTokenTargets(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.New("no .sql files found")
			}

			var hadErrors bool
			for _, path := range files {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				fields := logrus.Fields{"file": path, "session": sessionID.String()}
				if !verbose {
					logger.SetLevel(logrus.ErrorLevel)
				}
				sess := pgscan.NewSession(scanner.FileRef(path), string(content), cfg, enc, logger, fields)

				toks, scanErr := sess.Tokens()
				sess.Finish()

				for _, t := range toks {
					repr.Println(t)
				}
				if scanErr != nil {
					hadErrors = true
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, scanErr.Error())
				}
			}
			if hadErrors {
				return errors.New("one or more files failed to scan")
			}
			return nil
		},
	}
)

// resolveTokenTargets expands explicit file arguments, or walks
// --directory for *.sql files when none are given.
func resolveTokenTargets(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var files []string
	err := filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".sql") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
