// Package ae7q provides a fluent API for reading the query pages of
// ae7q.com: callsign, FRN, licensee ID and application detail history.
//
// Basic usage:
//
//	results, warnings, err := ae7q.Open("kn8u.html").Kind(ae7q.CallQuery).Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ae7q.FormatWarnings(warnings))
//	}
//	for _, r := range results {
//	    fmt.Println(r.Table.Schema, len(r.Records))
//	}
//
// Aggregated results:
//
//	data, _, err := ae7q.FromReader(resp.Body).
//	    Kind(ae7q.ApplicationQuery).
//	    Query("0008963527").
//	    ApplicationData()
//
// Pages are fetched by the fetch package; the lower-level tables, records
// and htmldoc packages are also available for custom pipelines.
package ae7q

import (
	"io"

	"github.com/tsawler/ae7q/htmldoc"
)

// Open returns an Extractor for a saved HTML file. The file is read when a
// terminal operation like Tables() runs.
//
// Example:
//
//	results, warnings, err := ae7q.Open("kn8u.html").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader parses an HTML page from r and returns an Extractor for it.
// The page is read immediately; a parse failure is reported by the first
// terminal operation.
//
// Example:
//
//	resp, err := http.Get(url)
//	// ...
//	defer resp.Body.Close()
//	results, warnings, err := ae7q.FromReader(resp.Body).Kind(ae7q.FrnQuery).Tables()
func FromReader(r io.Reader) *Extractor {
	e := &Extractor{options: defaultOptions()}
	doc, err := htmldoc.OpenReader(r)
	if err != nil {
		e.err = err
		return e
	}
	e.doc = doc
	e.docOpened = true
	return e
}

// FromDocument creates an Extractor from an already-parsed document.
// Note: The caller is responsible for closing the document.
//
// Example:
//
//	doc, err := client.Fetch(ctx, ae7q.CallQuery, "kn8u")
//	// ...
//	data, _, err := ae7q.FromDocument(doc).Query("kn8u").CallData()
func FromDocument(doc *htmldoc.Reader) *Extractor {
	return &Extractor{
		doc:       doc,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a call to Tables() or one of the
// aggregate operations and panics if the error is non-nil. Warnings are
// discarded.
//
// Example:
//
//	data := ae7q.MustTables(ae7q.Open("kn8u.html").CallData())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
