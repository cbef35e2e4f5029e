package tabular

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
	"github.com/parquet-go/parquet-go"
)

// ParquetWriter serializes tables into snappy compressed parquet files with optional columns.
type ParquetWriter struct{}

func NewParquetWriter() *ParquetWriter {
	return &ParquetWriter{}
}

// Serialize writes the table next to path first and renames it into place,
// so a failed write never leaves a partial file under the final name.
func (w *ParquetWriter) Serialize(table *domain.Table, path string) (err error) {
	schema, index, err := schemaOf(table)
	if err != nil {
		return err
	}

	rows, err := rowsOf(table, index)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if err := write(tmp, schema, rows); err != nil {
		return errors.Join(err, tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move parquet file into place: %w", err)
	}

	return nil
}

func write(f *os.File, schema *parquet.Schema, rows []parquet.Row) error {
	pw := parquet.NewWriter(f, schema, parquet.Compression(&parquet.Snappy))

	if _, err := pw.WriteRows(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to flush parquet writer: %w", err)
	}

	return nil
}

func schemaOf(table *domain.Table) (*parquet.Schema, []int, error) {
	if len(table.Columns) == 0 {
		return nil, nil, ErrNoColumns
	}

	group := make(parquet.Group, len(table.Columns))
	for _, col := range table.Columns {
		group[col.Name] = parquet.Optional(nodeOf(col.Kind))
	}

	schema := parquet.NewSchema("schema", group)

	// Group columns are ordered by name, map each table column to its leaf index.
	leaves := make(map[string]int, len(table.Columns))
	for i, path := range schema.Columns() {
		leaves[path[0]] = i
	}

	index := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		leaf, ok := leaves[col.Name]
		if !ok {
			return nil, nil, fmt.Errorf("column %q missing from schema", col.Name)
		}
		index[i] = leaf
	}

	return schema, index, nil
}

func nodeOf(kind domain.Kind) parquet.Node {
	switch kind {
	case domain.KindInt64:
		return parquet.Int(64)
	case domain.KindFloat64:
		return parquet.Leaf(parquet.DoubleType)
	case domain.KindBool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.String()
	}
}

func rowsOf(table *domain.Table, index []int) ([]parquet.Row, error) {
	rows := make([]parquet.Row, len(table.Rows))

	for r, cells := range table.Rows {
		if len(cells) != len(index) {
			return nil, fmt.Errorf("row #%d has %d cells, expected %d", r+1, len(cells), len(index))
		}

		row := make(parquet.Row, len(index))
		for c, cell := range cells {
			v, err := valueOf(cell)
			if err != nil {
				return nil, fmt.Errorf("row #%d column %q: %w", r+1, table.Columns[c].Name, err)
			}

			definition := 1
			if cell == nil {
				definition = 0
			}

			row[index[c]] = v.Level(0, definition, index[c])
		}

		rows[r] = row
	}

	return rows, nil
}

func valueOf(cell any) (parquet.Value, error) {
	switch v := cell.(type) {
	case nil:
		return parquet.NullValue(), nil
	case int64:
		return parquet.Int64Value(v), nil
	case float64:
		return parquet.DoubleValue(v), nil
	case bool:
		return parquet.BooleanValue(v), nil
	case string:
		return parquet.ByteArrayValue([]byte(v)), nil
	default:
		return parquet.Value{}, fmt.Errorf("unsupported cell type %T", cell)
	}
}
