// Package uniqcol extracts the unique values of one spreadsheet column.
package uniqcol

import "github.com/sirupsen/logrus"

// DefaultOutputPath is where Run writes when no output path is configured.
const DefaultOutputPath = "output.csv"

// Options configures a run.
type Options struct {
	// OutputPath is the CSV file written by Run.
	// If empty, DefaultOutputPath is used.
	OutputPath string
	// Logger receives debug output for each pipeline stage.
	// If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
		Logger:     logrus.StandardLogger(),
	}
}

// outputPath returns the configured output path or the default.
func (o Options) outputPath() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return DefaultOutputPath
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
