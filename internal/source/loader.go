package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when the source file does not exist.
var ErrNotFound = errors.New("source file not found")

const byteOrderMark = "\ufeff"

// LoadFile reads and parses the CSV file at path.
func LoadFile(fsys afero.Fs, path string) ([]Row, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	return rows, nil
}

// Parse reads CSV records from r. Input without a header yields no rows.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	columns := indexHeader(header)

	var rows []Row

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV record %d: %w", line, err)
		}

		rows = append(rows, Row{
			Line:      line,
			Seq:       cell(record, columns, ColumnSeq),
			Name:      cell(record, columns, ColumnName),
			Component: cell(record, columns, ColumnComponent),
			Input:     cell(record, columns, ColumnInput),
		})
	}

	if rows == nil {
		rows = []Row{}
	}

	return rows, nil
}

// indexHeader maps trimmed column names to their positions; the last occurrence wins.
func indexHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}

		columns[strings.TrimSpace(name)] = i
	}

	return columns
}

func cell(record []string, columns map[string]int, name string) *string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return nil
	}

	v := record[i]

	return &v
}
