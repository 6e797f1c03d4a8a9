package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DateTimeLayout is the layout used when a date value is rendered as text.
const DateTimeLayout = "2006-01-02 15:04:05"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindDate
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindDate:
		return "Date"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is the typed content of a single grid cell. The zero Value is Empty.
//
// Lists only appear in the trailing column of merged vanity application
// tables, where one logical application carries several requested callsigns.
type Value struct {
	kind  Kind
	text  string
	date  time.Time
	items []Value
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Date returns a date value.
func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// List returns a list value holding a copy of items.
func List(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the raw text of a text value, or "" for any other kind.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// Time returns the timestamp of a date value.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.date, true
}

// Items returns a copy of the elements of a list value.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// IsBlank reports whether v carries no content: the empty value, or empty text.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return v.text == ""
	}
	return false
}

// String renders the value the way it appears in delimited output.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindDate:
		return v.date.Format(DateTimeLayout)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Equal reports whether two values hold the same variant and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindDate:
		return v.date.Equal(o.date)
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes empty values as null, lists as arrays and everything
// else as its rendered string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindEmpty:
		return []byte("null"), nil
	case KindList:
		return json.Marshal(v.items)
	default:
		return json.Marshal(v.String())
	}
}
