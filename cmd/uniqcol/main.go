// Package main provides the CLI entry point for uniqcol.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/uniqcol-go/pkg/uniqcol"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code. Every
// failure prints one line to stderr and exits 1.
func execute(args []string, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)

	rootCmd := newRootCmd(logger, stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, uniqcol.ErrBadArgs) {
			fmt.Fprintf(stderr, "Usage: %s\n", rootCmd.UseLine())
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(logger *logrus.Logger, stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uniqcol <input-path> <sheet-name> <column-name>",
		Short: "Write the unique values of a spreadsheet column to CSV",
		Long: `uniqcol reads one column of one sheet from an .xlsx or .ods workbook,
collects its distinct non-empty values, sorts them and writes them to a
single-column CSV file.

Files ending in .ods are read as OpenDocument spreadsheets; anything else
is read as xlsx. The column is found by exact match against the first row.
Flags must come before the input path; everything after it is taken as
written, so a header such as "-5" can be selected.`,
		Args:          exactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, logger, stdout)
		},
	}

	rootCmd.Flags().StringP("output", "o", uniqcol.DefaultOutputPath, "Output CSV path")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log each pipeline stage to stderr")
	// Stop flag parsing at the first positional argument so sheet and
	// column names starting with "-" reach the pipeline untouched.
	rootCmd.Flags().SetInterspersed(false)

	return rootCmd
}

// exactArgs rejects any argument count other than n before a file is
// touched.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return uniqcol.NewError(uniqcol.KindBadArgs, "",
				fmt.Errorf("expected %d, got %d", n, len(args)))
		}
		return nil
	}
}

func run(cmd *cobra.Command, args []string, logger *logrus.Logger, stdout io.Writer) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	inputPath, sheetName, columnName := args[0], args[1], args[2]

	opts := uniqcol.Options{
		OutputPath: cfg.Output,
		Logger:     logger,
	}

	result, err := uniqcol.Run(inputPath, sheetName, columnName, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Unique values of column %q written to %q.\n", columnName, result.OutputPath)
	return nil
}
