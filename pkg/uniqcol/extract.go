package uniqcol

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/column"
	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/models"
	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/output"
	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/parser"
)

// Extract reads the unique non-empty values of columnName from sheetName.
// The values in the result are sorted in byte order. Nothing is written.
func Extract(path, sheetName, columnName string, opts Options) (*models.Result, error) {
	log := opts.logger().WithFields(logrus.Fields{
		"path":   path,
		"sheet":  sheetName,
		"column": columnName,
	})

	format := parser.FormatFor(path)
	log.WithField("format", format).Debug("opening workbook")

	wb, err := parser.Open(path)
	if err != nil {
		return nil, NewError(KindOpen, path, err)
	}
	defer wb.Close()

	sheet, err := wb.Sheet(sheetName)
	if err != nil {
		return nil, NewError(KindSheetNotFound, sheetName, err)
	}
	log.WithField("rows", len(sheet.Rows())).Debug("sheet loaded")

	set, index, scanned, err := column.Unique(sheet, columnName)
	if err != nil {
		return nil, NewError(KindColumnNotFound, columnName, err)
	}

	values := set.Sorted()
	log.WithFields(logrus.Fields{
		"index":   index,
		"scanned": scanned,
		"values":  len(values),
	}).Debug("column collected")

	return &models.Result{
		BookName:    filepath.Base(path),
		SheetName:   sheetName,
		ColumnName:  columnName,
		ColumnIndex: index,
		RowsScanned: scanned,
		Values:      values,
	}, nil
}

// Run extracts the column and writes its values to the configured output
// path. No output is written when extraction fails.
func Run(path, sheetName, columnName string, opts Options) (*models.Result, error) {
	result, err := Extract(path, sheetName, columnName, opts)
	if err != nil {
		return nil, err
	}

	outputPath := opts.outputPath()
	if err := output.WriteFile(outputPath, result.Values); err != nil {
		return nil, NewError(KindWrite, outputPath, err)
	}
	result.OutputPath = outputPath

	opts.logger().WithFields(logrus.Fields{
		"output": outputPath,
		"values": len(result.Values),
	}).Debug("output written")

	return result, nil
}
