// Package output writes extracted column values as CSV.
package output

import (
	"encoding/csv"
	"io"
	"os"
)

// Encode writes each value as a single-field CSV record. Fields containing
// commas, quotes or line breaks are quoted.
func Encode(w io.Writer, values []string) error {
	writer := csv.NewWriter(w)
	for _, v := range values {
		if err := writer.Write([]string{v}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile creates or truncates path and writes values to it. The file is
// closed on every return path. A failure part-way through leaves the
// partial file in place.
func WriteFile(path string, values []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, values)
}
