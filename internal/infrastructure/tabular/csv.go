package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

var ErrNoColumns = errors.New("no columns to parse from file")

// Cells treated as null regardless of the column kind.
var nullMarkers = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// CSVParser reads comma separated files with a header row and infers a kind per column.
type CSVParser struct {
	comma rune
}

func NewCSVParser() *CSVParser {
	return &CSVParser{comma: ','}
}

func (p *CSVParser) Parse(path string) (_ *domain.Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return p.parse(f)
}

func (p *CSVParser) parse(r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoColumns
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names, err := columnNames(header)
	if err != nil {
		return nil, err
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read record #%d: %w", len(records)+1, err)
		}

		record, err = fitRecord(record, len(names))
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", len(records)+1, err)
		}

		records = append(records, record)
	}

	return buildTable(names, records), nil
}

// fitRecord pads a short record with empty cells, which read back as nulls.
func fitRecord(record []string, width int) ([]string, error) {
	switch {
	case len(record) > width:
		return nil, fmt.Errorf("expected %d fields, got %d", width, len(record))
	case len(record) < width:
		padded := make([]string, width)
		copy(padded, record)
		return padded, nil
	default:
		return record, nil
	}
}

func columnNames(header []string) ([]string, error) {
	if len(header) == 0 {
		return nil, ErrNoColumns
	}

	names := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))

	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}

		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = struct{}{}

		names[i] = name
	}

	return names, nil
}

func buildTable(names []string, records [][]string) *domain.Table {
	table := &domain.Table{
		Columns: make([]domain.Column, len(names)),
		Rows:    make([][]any, len(records)),
	}

	for i := range records {
		table.Rows[i] = make([]any, len(names))
	}

	for c, name := range names {
		kind := inferKind(records, c)
		table.Columns[c] = domain.Column{Name: name, Kind: kind}

		for r, record := range records {
			table.Rows[r][c] = convertCell(kind, record[c])
		}
	}

	return table
}

func isNull(cell string) bool {
	_, ok := nullMarkers[cell]
	return ok
}

func inferKind(records [][]string, col int) domain.Kind {
	isInt, isFloat, isBool := true, true, true
	nonNull := 0

	for _, record := range records {
		cell := record[col]
		if isNull(cell) {
			continue
		}
		nonNull++

		if isInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				isInt = false
			}
		}

		if isFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				isFloat = false
			}
		}

		if isBool {
			isBool = strings.EqualFold(cell, "true") || strings.EqualFold(cell, "false")
		}
	}

	switch {
	case nonNull == 0:
		return domain.KindString
	case isInt:
		return domain.KindInt64
	case isFloat:
		return domain.KindFloat64
	case isBool:
		return domain.KindBool
	default:
		return domain.KindString
	}
}

// convertCell assumes the cell was accepted by inferKind for the given kind.
func convertCell(kind domain.Kind, cell string) any {
	if isNull(cell) {
		return nil
	}

	switch kind {
	case domain.KindInt64:
		v, _ := strconv.ParseInt(cell, 10, 64)
		return v
	case domain.KindFloat64:
		v, _ := strconv.ParseFloat(cell, 64)
		return v
	case domain.KindBool:
		return strings.EqualFold(cell, "true")
	default:
		return cell
	}
}
