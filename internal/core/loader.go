package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/roster/internal/logging"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("empty file: no header row")
)

// LoadOptions controls how an export is read.
type LoadOptions struct {
	Encoding  string // text encoding of delimited input, DefaultEncoding if empty
	Delimiter rune   // field separator of delimited input, ',' if zero
	Sheet     string // XLSX sheet, first sheet if empty
}

// IsWorkbook reports whether path names an Excel workbook.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Load reads the export at path and resolves its columns.
//
// The existence check happens before the file is opened, so a missing file
// is always ErrInputNotFound. The whole file is read into memory before any
// row is processed.
func Load(ctx context.Context, path string, opts LoadOptions) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat input: %w", err)
	}

	var (
		rows [][]string
		size int64
		err  error
	)
	if IsWorkbook(path) {
		rows, err = readWorkbook(path, opts.Sheet)
	} else {
		rows, size, err = readDelimited(path, opts)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	header := rows[0]
	cols := ResolveColumns(header)
	logColumns(ctx, header, cols)

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, makeRecord(header, row))
	}

	logging.FromContext(ctx).Debug("input loaded",
		"path", path,
		"rows", len(records),
		"bytes", size,
	)

	return &Dataset{
		Source:  path,
		Header:  header,
		Records: records,
		Columns: cols,
		Bytes:   size,
	}, nil
}

// makeRecord pairs a row with the header. Cells beyond the header are
// ignored; a short row simply lacks the trailing columns. When a header
// name repeats, the rightmost cell present in the row wins.
func makeRecord(header, row []string) Record {
	rec := make(Record, len(header))
	for i, name := range header {
		if i >= len(row) {
			break
		}
		rec[name] = row[i]
	}
	return rec
}

// readDelimited reads, decodes and parses delimited text.
func readDelimited(path string, opts LoadOptions) ([][]string, int64, error) {
	decode, err := LookupDecoder(opts.Encoding)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r, counter := wrapInput(f)
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, counter.BytesRead, fmt.Errorf("read input: %w", err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, counter.BytesRead, err
	}

	rows, err := parseCSV(text, opts.Delimiter)
	if err != nil {
		return nil, counter.BytesRead, err
	}
	return rows, counter.BytesRead, nil
}

func parseCSV(text string, delimiter rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	if delimiter != 0 {
		r.Comma = delimiter
	}
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return rows, nil
}

// readWorkbook reads every row of one sheet. Cell values come back as the
// formatted strings Excel shows, already UTF-8.
func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet not found: %q", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx: %w", err)
	}

	// GetRows keeps blank rows as empty slices; the CSV reader skips them.
	out := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	return out, nil
}
