package domain

type Kind string

const (
	KindInt64   Kind = "int64"
	KindFloat64 Kind = "float64"
	KindBool    Kind = "bool"
	KindString  Kind = "string"
)

type Column struct {
	Name string
	Kind Kind
}

// Table is parsed tabular data. Row cells hold int64, float64, bool or string values
// matching the column kind; nil marks a null cell.
type Table struct {
	Columns []Column
	Rows    [][]any
}
