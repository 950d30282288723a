// Package excel reads candidate sequences from spreadsheet and CSV
// files for batch prediction: one sequence per row.
package excel

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"seqsense/internal/errors"
	"seqsense/internal/inputparse"
	"seqsense/ports"
)

// SequenceReader implements ports.SequenceSource over .xlsx and .csv
// files. Each row's cells join into one free-text input and go through
// the same parser the form uses, so file rows and typed input obey the
// same envelope.
type SequenceReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	parser   *inputparse.Parser
}

// NewSequenceReader creates a reader for the given file path.
func NewSequenceReader(filePath string) *SequenceReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &SequenceReader{
		filePath: filePath,
		fileType: fileType,
		parser:   inputparse.New(),
	}
}

// ReadSequences reads every row into a SourceRow. Rows that fail
// validation carry their error instead of aborting the whole file.
func (r *SequenceReader) ReadSequences(ctx context.Context) ([]ports.SourceRow, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.New(errors.CodeFileRead, "file not found: "+r.filePath)
	}
	var raws []string
	var err error
	switch r.fileType {
	case "csv":
		raws, err = r.readCSVRows()
	default:
		raws, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	out := make([]ports.SourceRow, 0, len(raws))
	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		row := ports.SourceRow{Line: i + 1, Raw: raw}
		row.Sequence, row.Err = r.parser.Parse(raw)
		out = append(out, row)
	}
	return out, nil
}

func (r *SequenceReader) readExcelRows() ([]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open spreadsheet")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New(errors.CodeFileRead, "spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}
	out := make([]string, 0, len(rows))
	for _, cells := range rows {
		out = append(out, strings.Join(cells, " "))
	}
	return out, nil
}

func (r *SequenceReader) readCSVRows() ([]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}
	out := make([]string, 0, len(records))
	for _, cells := range records {
		out = append(out, strings.Join(cells, " "))
	}
	return out, nil
}
