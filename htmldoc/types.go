package htmldoc

// DefaultTableClass is the class ae7q.com puts on its data tables.
const DefaultTableClass = "Database"

// Options controls which tables are read and how the input is decoded.
type Options struct {
	// TableClass selects tables carrying this class. Empty selects every table.
	TableClass string

	// ContentType is the Content-Type header the document was served with,
	// if known. It is used to pick the character encoding; without it the
	// encoding is sniffed from the document.
	ContentType string
}

// DefaultOptions returns options that select the site's data tables.
func DefaultOptions() Options {
	return Options{
		TableClass: DefaultTableClass,
	}
}
