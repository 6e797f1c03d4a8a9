// Package htmldoc reads the data tables out of an HTML page.
//
// The page is decoded to UTF-8 (using the Content-Type when known, sniffing
// otherwise), parsed with golang.org/x/net/html, and every table carrying
// the selected class is turned into a [model.RawTable]: rows of cells with
// their collapsed text and rowspan/colspan values.
//
//	r, err := htmldoc.OpenReader(resp.Body)
//	if err != nil {
//	    return err
//	}
//	for _, raw := range r.Tables() {
//	    // ...
//	}
//
// Nothing here interprets the cells. Span expansion and classification
// live in the tables package.
package htmldoc
