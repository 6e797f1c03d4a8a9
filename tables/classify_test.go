package tables

import (
	"testing"

	"github.com/tsawler/ae7q/model"
)

// blankRow returns a row of n empty text cells, with the given leading text.
func blankRow(n int, lead ...string) model.Row {
	row := make(model.Row, n)
	for i := range row {
		row[i] = model.Text("")
	}
	for i, s := range lead {
		row[i] = model.Text(s)
	}
	return row
}

// lastRow returns a row of n cells ending in last.
func lastRow(n int, last string) model.Row {
	row := blankRow(n)
	row[n-1] = model.Text(last)
	return row
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		rules  RuleSet
		grid   model.Grid
		schema model.Schema
		header int
	}{
		{"conditions", CallRules, model.Grid{blankRow(1, "Restricted")},
			model.SchemaConditions, model.NoHeader},
		{"call history", CallRules, model.Grid{blankRow(9, "Entity Name"), blankRow(9)},
			model.SchemaCallHistory, 0},
		{"trustee", CallRules, model.Grid{blankRow(1, "Trustee"), blankRow(9, "Callsign")},
			model.SchemaTrustee, 1},
		{"callsign predictions", CallRules, model.Grid{lastRow(9, "Prediction")},
			model.SchemaCallsignPendingPredictions, 0},
		{"application history", CallRules, model.Grid{blankRow(9, "Receipt Date")},
			model.SchemaApplicationsHistory, 0},
		{"event callsign", CallRules, model.Grid{blankRow(5, "Start Date")},
			model.SchemaEventCallsign, 0},
		{"call generic", CallRules, model.Grid{blankRow(3, "Something")},
			model.SchemaGeneric, model.NoHeader},
		{"one cell title only", CallRules, model.Grid{blankRow(1, "x"), blankRow(2)},
			model.SchemaGeneric, model.NoHeader},

		{"frn history", FrnRules, model.Grid{blankRow(1), blankRow(10, "Callsign")},
			model.SchemaFrnHistory, 1},
		{"frn predictions", FrnRules, model.Grid{lastRow(10, "Prediction")},
			model.SchemaPendingPredictions, 0},
		{"frn vanity history", FrnRules, model.Grid{blankRow(10, "Receipt Date")},
			model.SchemaVanityApplicationsHistory, 0},
		{"frn nine column predictions", FrnRules, model.Grid{lastRow(9, "Prediction")},
			model.SchemaGeneric, model.NoHeader},

		{"licensee history", LicenseeRules, model.Grid{blankRow(1), blankRow(10, "Callsign")},
			model.SchemaLicenseeIDHistory, 1},
		{"licensee predictions", LicenseeRules, model.Grid{lastRow(10, "Prediction")},
			model.SchemaPendingPredictions, 0},
		{"licensee vanity history", LicenseeRules, model.Grid{blankRow(10, "Receipt Date")},
			model.SchemaVanityApplicationsHistory, 0},

		{"application fields", ApplicationRules,
			model.Grid{blankRow(2, "Field Name", "Value"), blankRow(2, "Application", "x")},
			model.SchemaApplicationField, 1},
		{"application actions", ApplicationRules, model.Grid{blankRow(2, "Action Date")},
			model.SchemaApplicationActionHistory, 0},
		{"application attachments", ApplicationRules,
			model.Grid{blankRow(1, "Attachment records"), blankRow(4, "Date")},
			model.SchemaApplicationAttachments, 1},
		{"application vanity calls", ApplicationRules, model.Grid{blankRow(3, "#", "Vanity Callsign")},
			model.SchemaApplicationVanityCallsigns, 0},
		{"application generic", ApplicationRules, model.Grid{blankRow(2, "Other")},
			model.SchemaGeneric, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.grid, tt.rules); got != tt.schema {
				t.Errorf("Classify() = %v, want %v", got, tt.schema)
			}
			table := tt.rules.Apply(tt.grid)
			if table.Schema != tt.schema {
				t.Errorf("Apply().Schema = %v, want %v", table.Schema, tt.schema)
			}
			wantHeader := tt.header
			if wantHeader >= len(tt.grid) {
				wantHeader = model.NoHeader
			}
			if table.HeaderIndex != wantHeader {
				t.Errorf("HeaderIndex = %d, want %d", table.HeaderIndex, wantHeader)
			}
		})
	}
}

// Same ten-column prediction table, different schemas depending on query.
func TestClassify_PerQueryRuleSets(t *testing.T) {
	g := model.Grid{lastRow(10, "Prediction")}

	if got := Classify(g, CallRules); got != model.SchemaCallsignPendingPredictions {
		t.Errorf("call: %v", got)
	}
	if got := Classify(g, FrnRules); got != model.SchemaPendingPredictions {
		t.Errorf("frn: %v", got)
	}
	if got := Classify(g, ApplicationRules); got != model.SchemaGeneric {
		t.Errorf("application: %v", got)
	}
}

func TestClassify_Total(t *testing.T) {
	grids := []model.Grid{
		nil,
		{},
		{model.Row{}},
		{model.Row{}, model.Row{}},
		{blankRow(1)},
	}

	for _, set := range []RuleSet{CallRules, FrnRules, LicenseeRules, ApplicationRules} {
		for i, g := range grids {
			first := Classify(g, set)
			if again := Classify(g, set); again != first {
				t.Errorf("%s grid %d: Classify not deterministic (%v, %v)", set.Name, i, first, again)
			}
			if tbl := set.Apply(g); tbl == nil {
				t.Errorf("%s grid %d: Apply returned nil", set.Name, i)
			}
		}
	}
}

func TestApply_TrusteeScenario(t *testing.T) {
	g := model.Grid{
		blankRow(1, "Trustee history"),
		blankRow(9, "Callsign", "Region/State"),
		blankRow(9, "W8ABC", "OH"),
		blankRow(9, "W8XYZ", "MI"),
	}

	table := CallRules.Apply(g)
	if table.Schema != model.SchemaTrustee {
		t.Fatalf("Schema = %v, want Trustee", table.Schema)
	}
	if !table.Header.TextAt(0, "Callsign") {
		t.Errorf("Header = %v", table.Header.Strings())
	}
	if table.RowCount() != 2 || !table.Rows[0].TextAt(0, "W8ABC") {
		t.Errorf("Rows = %v", gridStrings(table.Rows))
	}
}

func TestApply_RelabelsApplicationFieldHeader(t *testing.T) {
	g := model.Grid{
		blankRow(2, "Field Name", "Value"),
		blankRow(2, "Application", "0008963527"),
		blankRow(2, "FRN", "0016605636"),
	}

	table := ApplicationRules.Apply(g)
	if !table.Header.TextAt(1, "Data") {
		t.Errorf("Header = %v, want column 1 relabelled", table.Header.Strings())
	}
	if !g[1].TextAt(1, "0008963527") {
		t.Error("Apply modified the source grid")
	}
	if table.RowCount() != 1 || !table.Rows[0].TextAt(0, "FRN") {
		t.Errorf("Rows = %v", gridStrings(table.Rows))
	}
}

func TestApply_CallHistoryScenario(t *testing.T) {
	g := model.Grid{
		blankRow(9, "Entity Name", "Applicant Type"),
		blankRow(9, "DOE, JOHN", "Individual"),
	}

	table := CallRules.Apply(g)
	if table.Schema != model.SchemaCallHistory {
		t.Fatalf("Schema = %v", table.Schema)
	}
	if !table.Rows[0].TextAt(0, "DOE, JOHN") {
		t.Errorf("first data row = %v", table.Rows[0].Strings())
	}
}
