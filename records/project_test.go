package records

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tsawler/ae7q/model"
)

func textRow(cells ...string) model.Row {
	row := make(model.Row, len(cells))
	for i, c := range cells {
		row[i] = model.Text(c)
	}
	return row
}

func TestProject_CallHistory(t *testing.T) {
	table := model.NewTable(model.SchemaCallHistory, model.Grid{
		textRow("Entity Name", "Applicant Type", "Operator Class", "Region/State",
			"License Status", "Grant Date", "Effective Date", "Cancel Date", "Expire Date"),
		textRow("DOE, JOHN", "Individual", "Extra", "OH", "Active", "a", "b", "c", "d"),
	}, 0)

	recs, err := Project(table)
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	rec, ok := recs[0].(CallHistory)
	if !ok {
		t.Fatalf("record is %T, want CallHistory", recs[0])
	}
	if rec.EntityName.Text() != "DOE, JOHN" {
		t.Errorf("EntityName = %q", rec.EntityName.Text())
	}
	if rec.ExpireDate.Text() != "d" {
		t.Errorf("ExpireDate = %q", rec.ExpireDate.Text())
	}
	if rec.Schema() != model.SchemaCallHistory {
		t.Errorf("Schema() = %v", rec.Schema())
	}
}

func TestProject_ApplicationsHistory(t *testing.T) {
	table := model.NewTable(model.SchemaApplicationsHistory, model.Grid{
		textRow("2020-06-08", "KN8U", "OH", "DOE, JOHN", "0008963527 (Online)",
			"New", "", "", "Granted"),
	}, model.NoHeader)

	recs, err := Project(table)
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	rec := recs[0].(ApplicationsHistory)
	want := FileNumber{Number: "0008963527", Type: "Online"}
	if rec.ULSFileNumber != want {
		t.Errorf("ULSFileNumber = %+v, want %+v", rec.ULSFileNumber, want)
	}
	if rec.ApplicationStatus.Text() != "Granted" {
		t.Errorf("ApplicationStatus = %q", rec.ApplicationStatus.Text())
	}
}

func TestProject_VanityApplicationsHistory(t *testing.T) {
	row := textRow("2020-06-08", "KN8U", "OH", "E", "0008963527 (Online)",
		"New", "", "", "Granted", "")
	row[9] = model.List([]model.Value{model.Text("W8A"), model.Text("W8B")})

	recs, err := Project(model.NewTable(model.SchemaVanityApplicationsHistory, model.Grid{row}, model.NoHeader))
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	rec := recs[0].(VanityApplicationsHistory)
	if len(rec.AppliedCallsigns) != 2 || rec.AppliedCallsigns[1].Text() != "W8B" {
		t.Errorf("AppliedCallsigns = %v", rec.AppliedCallsigns)
	}
	if rec.OperatorClass.Text() != "E" {
		t.Errorf("OperatorClass = %q", rec.OperatorClass.Text())
	}
}

func TestProject_FrnAndLicenseeHistory(t *testing.T) {
	row := textRow("KN8U", "OH", "DOE, JOHN", "Individual", "Extra", "Active",
		"g", "e", "c", "x")

	for _, s := range []model.Schema{model.SchemaFrnHistory, model.SchemaLicenseeIDHistory} {
		recs, err := Project(model.NewTable(s, model.Grid{row}, model.NoHeader))
		if err != nil {
			t.Fatalf("%v: Project() error: %v", s, err)
		}
		if recs[0].Schema() != s {
			t.Errorf("record schema = %v, want %v", recs[0].Schema(), s)
		}
		switch r := recs[0].(type) {
		case FrnHistory:
			if r.ExpireDate.Text() != "x" || r.Callsign.Text() != "KN8U" {
				t.Errorf("FrnHistory = %+v", r)
			}
		case LicenseeIDHistory:
			if r.OperatorClass.Text() != "Extra" {
				t.Errorf("LicenseeIDHistory = %+v", r)
			}
		default:
			t.Errorf("unexpected record %T", r)
		}
	}
}

func TestProject_ApplicationVanityCallsigns(t *testing.T) {
	table := model.NewTable(model.SchemaApplicationVanityCallsigns, model.Grid{
		textRow("1", "W8A", "Assignment"),
		textRow("2", "W8B"),
		textRow("3", "W8C", "Assignment", "extra"),
	}, model.NoHeader)

	recs, err := Project(table)
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	first := recs[0].(ApplicationVanityCallsign)
	if first.Prediction == nil || first.Prediction.Text() != "Assignment" {
		t.Errorf("first Prediction = %v", first.Prediction)
	}
	second := recs[1].(ApplicationVanityCallsign)
	if second.Prediction != nil {
		t.Errorf("second Prediction = %v, want nil", second.Prediction)
	}
	// only three-column rows carry a prediction
	third := recs[2].(ApplicationVanityCallsign)
	if third.Prediction != nil {
		t.Errorf("third Prediction = %v, want nil", third.Prediction)
	}
}

func TestProject_EverySchema(t *testing.T) {
	for _, s := range model.Schemas {
		cols, ok := Columns(s)
		if s == model.SchemaGeneric {
			if ok {
				t.Error("Generic should have no projection")
			}
			continue
		}
		if !ok {
			t.Errorf("%v has no projection", s)
			continue
		}

		row := make(model.Row, cols)
		for i := range row {
			row[i] = model.Text("x")
		}
		recs, err := Project(model.NewTable(s, model.Grid{row}, model.NoHeader))
		if err != nil {
			t.Errorf("%v: Project() error: %v", s, err)
			continue
		}
		if len(recs) != 1 || recs[0].Schema() != s {
			t.Errorf("%v: got %d records", s, len(recs))
		}
	}
}

func TestProject_Generic(t *testing.T) {
	recs, err := Project(model.NewTable(model.SchemaGeneric, model.Grid{textRow("a")}, model.NoHeader))
	if err != nil || recs != nil {
		t.Errorf("Project(Generic) = %v, %v; want nil, nil", recs, err)
	}
}

func TestProject_ShortRow(t *testing.T) {
	table := model.NewTable(model.SchemaEventCallsign, model.Grid{
		textRow("Start Date", "End Date", "Callsign", "Entity Name", "Event Name"),
		textRow("a", "b", "c", "d", "e"),
		textRow("a", "b", "c"),
	}, 0)

	_, err := Project(table)
	if !errors.Is(err, ErrShortRow) {
		t.Fatalf("error = %v, want ErrShortRow", err)
	}
	var re *RowError
	if !errors.As(err, &re) {
		t.Fatalf("error %T is not *RowError", err)
	}
	if re.Row != 1 || re.Want != 5 || re.Got != 3 {
		t.Errorf("RowError = %+v", re)
	}
}

func TestSplitFileNumber(t *testing.T) {
	tests := []struct {
		in   string
		want FileNumber
	}{
		{"0008963527 (Online)", FileNumber{"0008963527", "Online"}},
		{"0008963527 (Manual)", FileNumber{"0008963527", "Manual"}},
		{"0008963527", FileNumber{"0008963527", ""}},
		{"", FileNumber{"", ""}},
	}

	for _, tt := range tests {
		if got := SplitFileNumber(model.Text(tt.in)); got != tt.want {
			t.Errorf("SplitFileNumber(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		v    model.Value
		want bool
	}{
		{model.Text("Y"), true},
		{model.Text("N"), false},
		{model.Text("y"), false},
		{model.Text("Yes"), false},
		{model.Empty(), false},
	}

	for _, tt := range tests {
		if got := Flag(tt.v); got != tt.want {
			t.Errorf("Flag(%q) = %v, want %v", tt.v.String(), got, tt.want)
		}
	}
}

func TestRecord_JSONFieldNames(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{
			ApplicationsHistory{
				ApplicationCallsign: model.Text("KN8U"),
				ULSFileNumber:       FileNumber{Number: "0008963527", Type: "Online"},
			},
			`{"receipt_date":null,"application_callsign":"KN8U","region_state":null,` +
				`"entity_name":null,"uls_file_number":{"number":"0008963527","type":"Online"},` +
				`"application_purpose":null,"payment_date":null,"last_action_date":null,` +
				`"application_status":null}`,
		},
		{
			ApplicationVanityCallsign{SequenceNumber: model.Text("2"), Callsign: model.Text("W8B")},
			`{"sequence_number":"2","callsign":"W8B","prediction":null}`,
		},
		{
			EventCallsign{EntityName: model.Text("Club")},
			`{"start_date":null,"end_date":null,"callsign":null,"entity_name":"Club","event_name":null}`,
		},
	}

	for _, tt := range tests {
		got, err := json.Marshal(tt.rec)
		if err != nil {
			t.Fatalf("Marshal(%T) error: %v", tt.rec, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%T) = %s, want %s", tt.rec, got, tt.want)
		}
	}
}
