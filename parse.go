package paramgen

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Column names of the table format.
const (
	ColumnParameter   = "Parameter"
	ColumnGoParameter = "Go Parameter"
	ColumnType        = "Type"
	ColumnDescription = "Description"
	ColumnValues      = "Values"
)

// strideSize is the number of lines per record in the fixed-stride format:
// name, type, description and a blank separator.
const strideSize = 4

// maxLineSize bounds a single line of fixed-stride input.
const maxLineSize = 4 << 20

var (
	// ErrEmptyInput is returned by TableReader when the input has no header row.
	ErrEmptyInput = errors.New("empty input")
	// ErrMissingColumn is returned by TableReader when the header lacks the Parameter column.
	ErrMissingColumn = errors.New("missing column")
)

// FileAccessError reports an input file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// RecordReader turns raw input into parameter records, in input order.
type RecordReader interface {
	Read(r io.Reader) ([]ParameterRecord, error)
}

// StrideReader reads the legacy plain text layout copied from an HTML
// parameter table: name, type and description on consecutive lines, with a
// blank line between records.
type StrideReader struct {
	Marker string // Required marker, DefaultMarker when empty
}

// TableReader reads a delimited table whose first row names the columns.
type TableReader struct {
	Delimiter rune   // Field separator, ',' when zero
	Marker    string // Required marker, DefaultMarker when empty
}

// ParseFile opens path and reads all records from it with reader.
func ParseFile(path string, reader RecordReader) ([]ParameterRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := reader.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read records from %s: %w", path, err)
	}
	return records, nil
}

// ReaderFor selects a reader from the file extension of path. A non-zero
// delimiter always selects the table format.
func ReaderFor(path string, delimiter rune, marker string) RecordReader {
	if delimiter != 0 {
		return &TableReader{Delimiter: delimiter, Marker: marker}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &TableReader{Delimiter: ',', Marker: marker}
	case ".tsv":
		return &TableReader{Delimiter: '\t', Marker: marker}
	default:
		return &StrideReader{Marker: marker}
	}
}

// Read implements RecordReader. A record cut short by the end of input keeps
// the fields that are present.
func (s *StrideReader) Read(r io.Reader) ([]ParameterRecord, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan input: %w", err)
	}

	var records []ParameterRecord

	for i := 0; i < len(lines); i += strideSize {
		group := lines[i:min(i+strideSize, len(lines))]

		name, required := ParseName(group[0], markerOrDefault(s.Marker))
		if name == "" {
			continue
		}

		record := ParameterRecord{Name: name, Required: required}
		if len(group) > 1 {
			record.Type = group[1]
		}
		if len(group) > 2 {
			record.Description = group[2]
		}
		records = append(records, record)
	}

	return records, nil
}

// Read implements RecordReader. Columns are matched by name, ignoring case
// and surrounding whitespace. Rows without a parameter name are skipped.
func (t *TableReader) Read(r io.Reader) ([]ParameterRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = t.Delimiter
	if cr.Comma == 0 {
		cr.Comma = ','
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := indexColumns(header)
	if _, ok := columns[strings.ToLower(ColumnParameter)]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnParameter)
	}

	var records []ParameterRecord

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		cell := func(column string) string {
			i, ok := columns[strings.ToLower(column)]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name, required := ParseName(cell(ColumnParameter), markerOrDefault(t.Marker))
		if name == "" {
			continue
		}

		records = append(records, ParameterRecord{
			Name:        name,
			Required:    required,
			Type:        cell(ColumnType),
			Description: cell(ColumnDescription),
			GoName:      cell(ColumnGoParameter),
			Values:      cell(ColumnValues),
		})
	}

	return records, nil
}

// indexColumns maps lower-cased header names to their position. The first
// occurrence of a duplicated name wins.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

func markerOrDefault(marker string) string {
	if marker == "" {
		return DefaultMarker
	}
	return marker
}
