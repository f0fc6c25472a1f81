package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/uniqcol-go/pkg/uniqcol/models"
)

// XML namespaces used in OpenDocument content.xml
const (
	nsOffice  = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsTable   = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsText    = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsCalcExt = "urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0"
)

const odsMimeType = "application/vnd.oasis.opendocument.spreadsheet"

// ErrInvalidODS indicates the archive is not an OpenDocument spreadsheet.
var ErrInvalidODS = errors.New("invalid ods format")

// odsWorkbook holds every sheet of an ods file, decoded at open time.
type odsWorkbook struct {
	sheets []*grid
}

// OpenODS opens an OpenDocument spreadsheet and decodes its content.xml.
func OpenODS(path string) (Workbook, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if mime, err := readZipFile(&r.Reader, "mimetype"); err != nil {
		return nil, err
	} else if mime != nil && strings.TrimSpace(string(mime)) != odsMimeType {
		return nil, fmt.Errorf("%w: mimetype %q", ErrInvalidODS, strings.TrimSpace(string(mime)))
	}

	content, err := openZipFile(&r.Reader, "content.xml")
	if err != nil {
		return nil, err
	}
	defer content.Close()

	sheets, err := parseODSContent(content)
	if err != nil {
		return nil, fmt.Errorf("%w: content.xml: %v", ErrInvalidODS, err)
	}
	return &odsWorkbook{sheets: sheets}, nil
}

func (wb *odsWorkbook) Format() Format { return FormatODS }

func (wb *odsWorkbook) SheetNames() []string {
	names := make([]string, len(wb.sheets))
	for i, s := range wb.sheets {
		names[i] = s.name
	}
	return names
}

func (wb *odsWorkbook) Sheet(name string) (Sheet, error) {
	for _, s := range wb.sheets {
		if s.name == name {
			return s, nil
		}
	}
	return nil, sheetNotFound(wb.SheetNames())
}

func (wb *odsWorkbook) Close() error { return nil }

// readZipFile returns the contents of the named entry, or nil if absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func openZipFile(r *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range r.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("%w: %s missing", ErrInvalidODS, name)
}

// parseODSContent decodes all table:table elements of a content.xml stream.
func parseODSContent(r io.Reader) ([]*grid, error) {
	var (
		sheets []*grid
		sheet  *odsSheetBuilder
		row    *odsRowBuilder
	)

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != nsTable {
				continue
			}
			switch t.Name.Local {
			case "table":
				if sheet == nil {
					sheet = &odsSheetBuilder{name: attrValue(t, nsTable, "name")}
				}
			case "table-row":
				if sheet != nil {
					row = &odsRowBuilder{repeat: repeatCount(t, "number-rows-repeated")}
				}
			case "table-cell", "covered-table-cell":
				if row == nil {
					continue
				}
				cell, err := parseODSCell(decoder, t)
				if err != nil {
					return nil, err
				}
				row.add(cell, repeatCount(t, "number-columns-repeated"))
			}
		case xml.EndElement:
			if t.Name.Space != nsTable {
				continue
			}
			switch t.Name.Local {
			case "table-row":
				if sheet != nil && row != nil {
					sheet.add(row.cells, row.repeat)
				}
				row = nil
			case "table":
				if sheet != nil {
					sheets = append(sheets, &grid{name: sheet.name, rows: usedRange(sheet.rows)})
				}
				sheet = nil
			}
		}
	}

	return sheets, nil
}

// odsSheetBuilder collects rows, deferring repeated empty rows until a
// non-empty row follows them so trailing filler is never materialised.
type odsSheetBuilder struct {
	name         string
	rows         []Row
	pendingEmpty int
}

func (b *odsSheetBuilder) add(cells []models.Cell, repeat int) {
	if len(cells) == 0 {
		b.pendingEmpty += repeat
		return
	}
	for ; b.pendingEmpty > 0; b.pendingEmpty-- {
		b.rows = append(b.rows, cellRow(nil))
	}
	row := cellRow(cells)
	for i := 0; i < repeat; i++ {
		b.rows = append(b.rows, row)
	}
}

// odsRowBuilder collects the cells of one row, deferring repeated empty
// cells the same way odsSheetBuilder defers rows.
type odsRowBuilder struct {
	cells        []models.Cell
	repeat       int
	pendingEmpty int
}

func (b *odsRowBuilder) add(cell models.Cell, repeat int) {
	if cell.IsEmpty() {
		b.pendingEmpty += repeat
		return
	}
	for ; b.pendingEmpty > 0; b.pendingEmpty-- {
		b.cells = append(b.cells, models.Empty())
	}
	for i := 0; i < repeat; i++ {
		b.cells = append(b.cells, cell)
	}
}

// parseODSCell decodes a table cell and consumes its children.
func parseODSCell(decoder *xml.Decoder, start xml.StartElement) (models.Cell, error) {
	text, err := readCellText(decoder)
	if err != nil {
		return models.Cell{}, err
	}

	if attrValue(start, nsCalcExt, "value-type") == "error" {
		return models.Error(text), nil
	}

	switch attrValue(start, nsOffice, "value-type") {
	case "float", "percentage", "currency":
		if v, err := strconv.ParseFloat(attrValue(start, nsOffice, "value"), 64); err == nil {
			return models.Number(v), nil
		}
	case "date":
		if t, ok := parseISODate(attrValue(start, nsOffice, "date-value")); ok {
			return models.Date(t), nil
		}
	case "boolean":
		if b, err := strconv.ParseBool(attrValue(start, nsOffice, "boolean-value")); err == nil {
			return models.Bool(b), nil
		}
	case "string":
		if s, ok := attrLookup(start, nsOffice, "string-value"); ok {
			return models.Text(s), nil
		}
	}

	// time cells and anything unparsable fall back to the displayed text
	if text == "" {
		return models.Empty(), nil
	}
	return models.Text(text), nil
}

// readCellText reads the displayed text of a cell up to its end element.
// Paragraphs are joined with newlines; annotations are skipped.
func readCellText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	paragraphs := 0
	inParagraph := false
	skipDepth := 0 // depth of an annotation being skipped, 0 if none

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if skipDepth > 0 {
				continue
			}
			switch {
			case t.Name.Space == nsOffice && t.Name.Local == "annotation":
				skipDepth = depth
			case t.Name.Space == nsText && t.Name.Local == "p" && depth == 2:
				if paragraphs > 0 {
					sb.WriteByte('\n')
				}
				paragraphs++
				inParagraph = true
			case t.Name.Space == nsText && t.Name.Local == "s":
				n := 1
				if c, err := strconv.Atoi(attrValue(t, nsText, "c")); err == nil && c > 0 {
					n = c
				}
				sb.WriteString(strings.Repeat(" ", n))
			case t.Name.Space == nsText && t.Name.Local == "tab":
				sb.WriteByte('\t')
			case t.Name.Space == nsText && t.Name.Local == "line-break":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch {
			case skipDepth == depth:
				skipDepth = 0
			case skipDepth == 0 && depth == 2 && t.Name.Space == nsText && t.Name.Local == "p":
				inParagraph = false
			}
			depth--
		case xml.CharData:
			if skipDepth == 0 && inParagraph {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

func attrLookup(se xml.StartElement, space, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func attrValue(se xml.StartElement, space, local string) string {
	v, _ := attrLookup(se, space, local)
	return v
}

// repeatCount reads a table:number-*-repeated attribute, defaulting to 1.
func repeatCount(se xml.StartElement, local string) int {
	n, err := strconv.Atoi(attrValue(se, nsTable, local))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
