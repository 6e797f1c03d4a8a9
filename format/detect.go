// Package format names the output formats of the ae7q command and
// recognises HTML input.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// CSV is semicolon-separated cells, one table row per line.
	CSV
	// PrettyCSV is CSV padded into aligned columns.
	PrettyCSV
	// JSON is the aggregated query result.
	JSON
	// XLSX is an Excel workbook with one sheet per table.
	XLSX
)

// Formats lists every known format.
var Formats = []Format{CSV, PrettyCSV, JSON, XLSX}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case PrettyCSV:
		return "pretty"
	case JSON:
		return "json"
	case XLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case CSV:
		return ".csv"
	case PrettyCSV:
		return ".txt"
	case JSON:
		return ".json"
	case XLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// Binary reports whether the format must be written to a file rather
// than a terminal.
func (f Format) Binary() bool {
	return f == XLSX
}

// Detect determines the output format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return CSV
	case ".txt":
		return PrettyCSV
	case ".json":
		return JSON
	case ".xlsx":
		return XLSX
	default:
		return Unknown
	}
}

// Parse returns the format with the given name, as accepted on the
// command line.
func Parse(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "csv":
		return CSV, nil
	case "pretty", "prettycsv", "table":
		return PrettyCSV, nil
	case "json":
		return JSON, nil
	case "xlsx", "excel":
		return XLSX, nil
	}
	return Unknown, fmt.Errorf("unknown format %q", name)
}

// IsHTML checks if the data looks like HTML content.
func IsHTML(data []byte) bool {
	// Trim leading whitespace and a UTF-8 byte order mark
	s := strings.TrimLeft(strings.TrimPrefix(string(data), "\ufeff"), " \t\r\n")
	if s == "" {
		return false
	}

	// Check for common HTML signatures (case-insensitive)
	upper := strings.ToUpper(s[:min(len(s), 512)])
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	// Fragments saved from a browser often start with a comment or a table
	return strings.HasPrefix(upper, "<!--") || strings.HasPrefix(upper, "<TABLE")
}
