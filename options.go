package ae7q

// extractOptions holds the configuration of an Extractor.
type extractOptions struct {
	// Which rule set classifies the tables
	kind Kind

	// Callsign, FRN, licensee ID or file number the page answers
	query string

	// Table selection; only used when tableClassSet is true, otherwise the
	// document's own selection applies
	tableClass    string
	tableClassSet bool

	// Lowercase two-letter prefixes that mark a callsign as Canadian
	canadianPrefixes []string
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		kind:             CallQuery,
		canadianPrefixes: DefaultCanadianPrefixes(),
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := o

	// Deep copy prefix slice
	if o.canadianPrefixes != nil {
		newOpts.canadianPrefixes = make([]string, len(o.canadianPrefixes))
		copy(newOpts.canadianPrefixes, o.canadianPrefixes)
	}

	return newOpts
}
