package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/ae7q/model"
)

// Reader provides access to the tables of an HTML document.
type Reader struct {
	doc    *html.Node
	title  string
	tables []model.RawTable
}

// Open opens an HTML file for reading with the default options.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader with the default options.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithOptions(r, DefaultOptions())
}

// OpenReaderWithOptions parses HTML from an io.Reader.
func OpenReaderWithOptions(r io.Reader, opts Options) (*Reader, error) {
	utf8, err := charset.NewReader(r, opts.ContentType)
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	doc, err := html.Parse(utf8)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:    doc,
		tables: make([]model.RawTable, 0),
	}

	// Extract title from head
	reader.extractHead(doc)

	// Collect data tables in document order
	reader.tables = collectTables(doc, opts.TableClass, reader.tables)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title.
func (r *Reader) Title() string {
	return r.title
}

// Tables returns the selected tables in document order.
func (r *Reader) Tables() []model.RawTable {
	out := make([]model.RawTable, len(r.tables))
	copy(out, r.tables)
	return out
}

// TablesWithClass selects tables by a class other than the one the
// Reader was opened with. Empty class selects every table.
func (r *Reader) TablesWithClass(class string) []model.RawTable {
	if r.doc == nil {
		return nil
	}
	return collectTables(r.doc, class, nil)
}

// extractHead extracts the title from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "title" {
				r.title = getTextContent(c)
				return
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// collectTables walks the tree and appends every table carrying class to
// out. Tables nested inside a selected table are collected separately.
func collectTables(n *html.Node, class string, out []model.RawTable) []model.RawTable {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return out
		}
		if n.Data == "table" && (class == "" || hasClass(n, class)) {
			out = append(out, parseTable(n))
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = collectTables(c, class, out)
	}
	return out
}

// parseTable extracts the rows of a table element. Only rows that belong
// to this table are read, not those of nested tables.
func parseTable(tableNode *html.Node) model.RawTable {
	table := model.RawTable{
		Rows: make([][]model.RawCell, 0),
	}

	// Find thead, tbody, tfoot, or direct tr children
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					table.Rows = append(table.Rows, parseTableRow(tr))
				}
			}
		case "tr":
			table.Rows = append(table.Rows, parseTableRow(c))
		}
	}

	return table
}

// parseTableRow parses a single table row. Span attributes are passed on
// as strings; malformed values are dealt with by model.NewRawCell.
func parseTableRow(tr *html.Node) []model.RawCell {
	row := make([]model.RawCell, 0)

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, model.NewRawCell(
				getTextContent(c),
				getAttr(c, "rowspan"),
				getAttr(c, "colspan"),
			))
		}
	}

	return row
}

// shouldSkipElement returns true if the element's content is never data.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// hasClass reports whether n's class attribute contains class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// getAttr returns the value of attribute key, or "" if absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// getTextContent returns the text of a node and its descendants. Each text
// node has its whitespace collapsed, empty ones are dropped, and the rest
// are joined with single spaces.
func getTextContent(n *html.Node) string {
	var parts []string
	getTextContentRecursive(n, &parts)
	return norm.NFC.String(strings.Join(parts, " "))
}

func getTextContentRecursive(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if s := strings.Join(strings.Fields(n.Data), " "); s != "" {
			*parts = append(*parts, s)
		}
		return
	case html.ElementNode:
		// Skip script/style content
		if shouldSkipElement(n.Data) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, parts)
	}
}
