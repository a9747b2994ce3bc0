// Package extract pulls plain text out of uploaded documents so the
// assistant can analyze them. Output is best-effort text, not a faithful
// rendering; layout is flattened to lines.
package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// ErrExtraction wraps every failure to pull text out of a document.
var ErrExtraction = errors.New("extraction failed")

// Kind identifies a supported document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindCSV  Kind = "csv"
	KindXLSX Kind = "xlsx"
)

// KindForFilename maps a file name to its document kind by extension.
func KindForFilename(name string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, true
	case ".csv":
		return KindCSV, true
	case ".xlsx":
		return KindXLSX, true
	}
	return "", false
}

// Extract returns the plain text of a document. Failures wrap ErrExtraction.
func Extract(data []byte, kind Kind) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindCSV:
		return extractCSV(data)
	case KindXLSX:
		return extractXLSX(data)
	default:
		return "", fmt.Errorf("%w: unsupported kind %q", ErrExtraction, kind)
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", ErrExtraction, err)
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf text: %v", ErrExtraction, err)
	}
	var b strings.Builder
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("%w: pdf text: %v", ErrExtraction, err)
	}
	return strings.TrimSpace(b.String()), nil
}

// extractCSV renders each record as a comma-joined line. Ragged rows are
// tolerated; a CSV that cannot be parsed at all is an error.
func extractCSV(data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: read csv: %v", ErrExtraction, err)
	}
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, strings.Join(rec, ", "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// extractXLSX renders every sheet, each row as a comma-joined line, with a
// "Sheet: <name>" header when the workbook has more than one sheet.
func extractXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: open xlsx: %v", ErrExtraction, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	var lines []string
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("%w: sheet %q: %v", ErrExtraction, sheet, err)
		}
		if len(sheets) > 1 {
			lines = append(lines, "Sheet: "+sheet)
		}
		for _, row := range rows {
			lines = append(lines, strings.Join(row, ", "))
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
