package domain

import "strings"

const (
	ExtDelimited = ".csv"
	ExtColumnar  = ".parquet"
)

// IsDelimited reports whether name is a staged delimited text file.
func IsDelimited(name string) bool {
	return strings.HasSuffix(name, ExtDelimited)
}

// IsColumnar reports whether name is a columnar file or object.
func IsColumnar(name string) bool {
	return strings.HasSuffix(name, ExtColumnar)
}

// ColumnarName returns the columnar sibling name of a delimited file, keeping the basename.
func ColumnarName(name string) string {
	return strings.TrimSuffix(name, ExtDelimited) + ExtColumnar
}
