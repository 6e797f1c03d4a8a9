package ae7q

import (
	"fmt"
	"strings"

	"github.com/tsawler/ae7q/model"
	"github.com/tsawler/ae7q/tables"
)

// Kind is the type of query a page answers. It decides which rule set
// classifies the page's tables.
type Kind int

const (
	CallQuery Kind = iota
	FrnQuery
	LicenseeQuery
	ApplicationQuery
)

// Kinds lists every query kind.
var Kinds = []Kind{CallQuery, FrnQuery, LicenseeQuery, ApplicationQuery}

// String returns the name the kind's rule set is registered under.
func (k Kind) String() string {
	switch k {
	case CallQuery:
		return "call"
	case FrnQuery:
		return "frn"
	case LicenseeQuery:
		return "licensee"
	case ApplicationQuery:
		return "application"
	default:
		return "unknown"
	}
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown query kind %q", name)
}

// RuleSet returns the rule set registered for k. An unknown kind gets an
// empty rule set, which classifies everything as Generic.
func (k Kind) RuleSet() tables.RuleSet {
	if rs, ok := tables.GetRuleSet(k.String()); ok {
		return rs
	}
	return tables.RuleSet{Name: k.String(), FallbackHeader: model.NoHeader}
}

// canadianPrefixes are the ITU prefixes allocated to Canada.
var canadianPrefixes = []string{
	"cf", "cg", "ch", "ci", "cj", "ck",
	"cy", "cz",
	"va", "vb", "vc", "vd", "ve", "vf", "vg",
	"vo",
	"vx", "vy",
	"xj", "xk", "xl", "xm", "xn", "xo",
}

// DefaultCanadianPrefixes returns a copy of the two-letter callsign
// prefixes allocated to Canada.
func DefaultCanadianPrefixes() []string {
	out := make([]string, len(canadianPrefixes))
	copy(out, canadianPrefixes)
	return out
}

// IsCanadian reports whether callsign starts with one of prefixes.
// The comparison ignores case.
func IsCanadian(callsign string, prefixes []string) bool {
	if len(callsign) < 2 {
		return false
	}
	pfx := strings.ToLower(callsign[:2])
	for _, p := range prefixes {
		if strings.ToLower(p) == pfx {
			return true
		}
	}
	return false
}
