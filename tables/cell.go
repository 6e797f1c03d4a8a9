package tables

import (
	"regexp"
	"time"

	"github.com/tsawler/ae7q/model"
)

// NoneMarker is the text the site prints for a field with no value.
const NoneMarker = "(none)"

// Date layouts recognised in cell text, in the order they are tried.
const (
	weekdayDateLayout = "Mon 2006-01-02"
	dateLayout        = "2006-01-02"
	dateTimeLayout    = "2006-01-02 15:04:05"
)

var (
	weekdayDatePattern = regexp.MustCompile(`^\w{3} \d{4}-\d{2}-\d{2}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

// ParseValue converts whitespace-collapsed cell text to a typed value.
//
// Text matching one of the three date formats becomes a date, the none
// marker becomes empty, and everything else (including text that looks like
// a date but does not parse) stays text.
func ParseValue(text string) model.Value {
	var layout string
	switch {
	case weekdayDatePattern.MatchString(text):
		layout = weekdayDateLayout
	case datePattern.MatchString(text):
		layout = dateLayout
	case dateTimePattern.MatchString(text):
		layout = dateTimeLayout
	case text == NoneMarker:
		return model.Empty()
	default:
		return model.Text(text)
	}

	t, err := time.Parse(layout, text)
	if err != nil {
		return model.Text(text)
	}
	return model.Date(t)
}
