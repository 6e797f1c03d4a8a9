package records

import (
	"strings"

	"github.com/tsawler/ae7q/model"
)

// projection maps the cells of one data row to a record.
type projection struct {
	columns int // minimum row length
	project func(r model.Row) Record
}

// projections holds the field mapping of every schema that has one.
// Generic tables have no entry.
var projections = map[model.Schema]projection{
	model.SchemaConditions: {1, func(r model.Row) Record {
		return Conditions{Conditions: r[0]}
	}},
	model.SchemaCallHistory: {9, func(r model.Row) Record {
		return CallHistory{
			EntityName:    r[0],
			ApplicantType: r[1],
			OperatorClass: r[2],
			RegionState:   r[3],
			LicenseStatus: r[4],
			GrantDate:     r[5],
			EffectiveDate: r[6],
			CancelDate:    r[7],
			ExpireDate:    r[8],
		}
	}},
	model.SchemaTrustee: {9, func(r model.Row) Record {
		return Trustee{
			Callsign:      r[0],
			RegionState:   r[1],
			EntityName:    r[2],
			ApplicantType: r[3],
			LicenseStatus: r[4],
			GrantDate:     r[5],
			EffectiveDate: r[6],
			CancelDate:    r[7],
			ExpireDate:    r[8],
		}
	}},
	model.SchemaApplicationsHistory: {9, func(r model.Row) Record {
		return ApplicationsHistory{
			ReceiptDate:         r[0],
			ApplicationCallsign: r[1],
			RegionState:         r[2],
			EntityName:          r[3],
			ULSFileNumber:       SplitFileNumber(r[4]),
			ApplicationPurpose:  r[5],
			PaymentDate:         r[6],
			LastActionDate:      r[7],
			ApplicationStatus:   r[8],
		}
	}},
	model.SchemaVanityApplicationsHistory: {10, func(r model.Row) Record {
		return VanityApplicationsHistory{
			ReceiptDate:         r[0],
			ApplicationCallsign: r[1],
			RegionState:         r[2],
			OperatorClass:       r[3],
			ULSFileNumber:       SplitFileNumber(r[4]),
			ApplicationPurpose:  r[5],
			PaymentDate:         r[6],
			LastActionDate:      r[7],
			ApplicationStatus:   r[8],
			AppliedCallsigns:    listOf(r[9]),
		}
	}},
	model.SchemaPendingPredictions: {10, func(r model.Row) Record {
		return PendingPredictions{
			ReceiptDate:       r[0],
			ProcessDate:       r[1],
			ApplicantCallsign: r[2],
			RegionState:       r[3],
			OperatorClass:     r[4],
			ULSFileNumber:     r[5],
			VanityType:        r[6],
			SequentialNumber:  r[7],
			VanityCallsign:    r[8],
			Prediction:        r[9],
		}
	}},
	model.SchemaCallsignPendingPredictions: {9, func(r model.Row) Record {
		return CallsignPendingPredictions{
			ReceiptDate:       r[0],
			ProcessDate:       r[1],
			ApplicantCallsign: r[2],
			OperatorClass:     r[3],
			RegionState:       r[4],
			ULSFileNumber:     r[5],
			VanityType:        r[6],
			SequentialNumber:  r[7],
			Prediction:        r[8],
		}
	}},
	model.SchemaEventCallsign: {5, func(r model.Row) Record {
		return EventCallsign{
			StartDate:  r[0],
			EndDate:    r[1],
			Callsign:   r[2],
			EntityName: r[3],
			EventName:  r[4],
		}
	}},
	model.SchemaFrnHistory: {10, func(r model.Row) Record {
		return FrnHistory(licenseRow(r))
	}},
	model.SchemaLicenseeIDHistory: {10, func(r model.Row) Record {
		return LicenseeIDHistory(licenseRow(r))
	}},
	model.SchemaApplicationField: {2, func(r model.Row) Record {
		return ApplicationField{Name: r[0], Data: r[1]}
	}},
	model.SchemaApplicationActionHistory: {2, func(r model.Row) Record {
		return ApplicationAction{ActionDate: r[0], ActionType: r[1]}
	}},
	model.SchemaApplicationAttachments: {4, func(r model.Row) Record {
		return ApplicationAttachment{
			Date:        r[0],
			Type:        r[1],
			Description: r[2],
			Result:      r[3],
		}
	}},
	model.SchemaApplicationVanityCallsigns: {2, func(r model.Row) Record {
		rec := ApplicationVanityCallsign{SequenceNumber: r[0], Callsign: r[1]}
		if len(r) == 3 {
			p := r[2]
			rec.Prediction = &p
		}
		return rec
	}},
}

// licenseFields is the ten-column layout shared by FRN and licensee ID
// history tables.
type licenseFields struct {
	Callsign      model.Value
	RegionState   model.Value
	EntityName    model.Value
	ApplicantType model.Value
	OperatorClass model.Value
	LicenseStatus model.Value
	GrantDate     model.Value
	EffectiveDate model.Value
	CancelDate    model.Value
	ExpireDate    model.Value
}

func licenseRow(r model.Row) licenseFields {
	return licenseFields{
		Callsign:      r[0],
		RegionState:   r[1],
		EntityName:    r[2],
		ApplicantType: r[3],
		OperatorClass: r[4],
		LicenseStatus: r[5],
		GrantDate:     r[6],
		EffectiveDate: r[7],
		CancelDate:    r[8],
		ExpireDate:    r[9],
	}
}

// Columns returns the number of cells a data row of schema s must have,
// and false for schemas that are not projected.
func Columns(s model.Schema) (int, bool) {
	p, ok := projections[s]
	return p.columns, ok
}

// Project maps every data row of t to a record of t's schema. Generic
// tables yield no records. A row shorter than the schema requires stops
// the projection with a *RowError.
func Project(t *model.Table) ([]Record, error) {
	p, ok := projections[t.Schema]
	if !ok {
		return nil, nil
	}

	out := make([]Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) < p.columns {
			return nil, &RowError{Schema: t.Schema, Row: i, Want: p.columns, Got: len(row)}
		}
		out = append(out, p.project(row))
	}
	return out, nil
}

// SplitFileNumber splits "<number> (<type>)" into its parts. A value with
// no annotation yields an empty Type.
func SplitFileNumber(v model.Value) FileNumber {
	number, kind, _ := strings.Cut(v.String(), " ")
	return FileNumber{
		Number: number,
		Type:   strings.Trim(kind, "()"),
	}
}

// Flag reports whether v is the single letter "Y".
func Flag(v model.Value) bool {
	return v.Kind() == model.KindText && v.Text() == "Y"
}

// listOf returns the elements of a list value. A plain non-blank value
// becomes a one-element list.
func listOf(v model.Value) []model.Value {
	switch {
	case v.Kind() == model.KindList:
		return v.Items()
	case v.IsBlank():
		return nil
	default:
		return []model.Value{v}
	}
}
