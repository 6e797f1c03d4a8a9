package ae7q

import (
	"fmt"

	"github.com/tsawler/ae7q/htmldoc"
	"github.com/tsawler/ae7q/model"
	"github.com/tsawler/ae7q/records"
	"github.com/tsawler/ae7q/tables"
)

// TableResult is one data table of a page after reconstruction,
// classification and projection.
type TableResult struct {
	// Index of the table among the page's selected tables
	Index int

	// Grid is the reconstructed table before it was split into header and rows
	Grid model.Grid

	// Table is the classified table; nil when Err is a build failure
	Table *model.Table

	// Records holds one record per data row; nil for Generic tables
	Records []records.Record

	// Err is set when this table could not be processed
	Err error
}

// Extractor provides a fluent interface for reading ae7q.com pages.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Parsed document
	doc *htmldoc.Reader

	// Lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool // true if the document has been parsed

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
		warnings:  append([]Warning(nil), e.warnings...),
	}
}

// ensureDocument opens the document if not already open.
func (e *Extractor) ensureDocument() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	doc, err := htmldoc.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open HTML: %w", err)
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		e.docOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Kind sets the type of query the page answers. The default is CallQuery.
//
// Example:
//
//	results, _, err := ae7q.Open("frn.html").Kind(ae7q.FrnQuery).Tables()
func (e *Extractor) Kind(k Kind) *Extractor {
	newExt := e.clone()
	newExt.options.kind = k
	return newExt
}

// Query records the callsign, FRN, licensee ID or file number the page
// answers. Call queries use it to recognise Canadian callsigns.
func (e *Extractor) Query(q string) *Extractor {
	newExt := e.clone()
	newExt.options.query = q
	return newExt
}

// TableClass selects tables by an HTML class other than the document's
// default. An empty class selects every table.
//
// Example:
//
//	results, _, err := ae7q.Open("page.html").TableClass("").Tables()
func (e *Extractor) TableClass(class string) *Extractor {
	newExt := e.clone()
	newExt.options.tableClass = class
	newExt.options.tableClassSet = true
	return newExt
}

// CanadianPrefixes replaces the callsign prefixes treated as Canadian.
func (e *Extractor) CanadianPrefixes(prefixes []string) *Extractor {
	newExt := e.clone()
	newExt.options.canadianPrefixes = append([]string(nil), prefixes...)
	return newExt
}

// ============================================================================
// Inspection Methods
// ============================================================================

// IsCanadian reports whether the query is a Canadian callsign. Only call
// queries can be Canadian.
func (e *Extractor) IsCanadian() bool {
	return e.options.kind == CallQuery && IsCanadian(e.options.query, e.options.canadianPrefixes)
}

// Title returns the page title.
// Note: This does NOT close the document, allowing further operations.
func (e *Extractor) Title() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureDocument(); err != nil {
		return "", err
	}
	return e.doc.Title(), nil
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Tables reads every selected table of the page.
//
// A table that fails to build or project does not stop the others: its
// TableResult carries the error and a warning is added. The returned error
// is only set when the page itself could not be read.
//
// Example:
//
//	results, warnings, err := ae7q.Open("kn8u.html").Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ae7q.FormatWarnings(warnings))
//	}
func (e *Extractor) Tables() ([]TableResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	var raw []model.RawTable
	if e.options.tableClassSet {
		raw = e.doc.TablesWithClass(e.options.tableClass)
	} else {
		raw = e.doc.Tables()
	}

	rs := e.options.kind.RuleSet()
	warnings := append([]Warning(nil), e.warnings...)
	results := make([]TableResult, 0, len(raw))

	for i, rt := range raw {
		res := processTable(i, rt, rs)
		if te, ok := res.Err.(*TableError); ok {
			warnings = append(warnings, Warning{
				Table:   i,
				Message: fmt.Sprintf("%s failed: %v", te.Stage, te.Err),
			})
		}
		results = append(results, res)
	}

	return results, warnings, nil
}

// processTable runs one raw table through the pipeline.
func processTable(index int, raw model.RawTable, rs tables.RuleSet) TableResult {
	res := TableResult{Index: index}

	grid, err := tables.Build(raw)
	if err != nil {
		res.Err = &TableError{Index: index, Stage: StageBuild, Err: err}
		return res
	}
	res.Grid = grid
	res.Table = rs.Apply(grid)

	recs, err := records.Project(res.Table)
	if err != nil {
		res.Err = &TableError{Index: index, Stage: StageProject, Err: err}
		return res
	}
	res.Records = recs

	return res
}
