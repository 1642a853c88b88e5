package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "pgscan",
		Short:        "pgscan",
		SilenceUsage: true,
		Long:         `CLI tool for scanning PostgreSQL SQL source into its token stream, without a live database connection.`,
	}

	directory string
	verbose   bool
	logger    = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory to read pgscan.yaml from")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scanner warnings")
	return rootCmd.Execute()
}

func init() {
	logger.SetFormatter(&logrus.TextFormatter{})
}
