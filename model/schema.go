package model

// Schema identifies the record layout of a classified table.
type Schema int

const (
	SchemaGeneric Schema = iota
	SchemaConditions
	SchemaCallHistory
	SchemaTrustee
	SchemaApplicationsHistory
	SchemaVanityApplicationsHistory
	SchemaPendingPredictions
	SchemaCallsignPendingPredictions
	SchemaEventCallsign
	SchemaFrnHistory
	SchemaLicenseeIDHistory
	SchemaApplicationField
	SchemaApplicationActionHistory
	SchemaApplicationAttachments
	SchemaApplicationVanityCallsigns
)

// Schemas lists every schema, Generic first.
var Schemas = []Schema{
	SchemaGeneric,
	SchemaConditions,
	SchemaCallHistory,
	SchemaTrustee,
	SchemaApplicationsHistory,
	SchemaVanityApplicationsHistory,
	SchemaPendingPredictions,
	SchemaCallsignPendingPredictions,
	SchemaEventCallsign,
	SchemaFrnHistory,
	SchemaLicenseeIDHistory,
	SchemaApplicationField,
	SchemaApplicationActionHistory,
	SchemaApplicationAttachments,
	SchemaApplicationVanityCallsigns,
}

func (s Schema) String() string {
	switch s {
	case SchemaConditions:
		return "Conditions"
	case SchemaCallHistory:
		return "CallHistory"
	case SchemaTrustee:
		return "Trustee"
	case SchemaApplicationsHistory:
		return "ApplicationsHistory"
	case SchemaVanityApplicationsHistory:
		return "VanityApplicationsHistory"
	case SchemaPendingPredictions:
		return "PendingPredictions"
	case SchemaCallsignPendingPredictions:
		return "CallsignPendingPredictions"
	case SchemaEventCallsign:
		return "EventCallsign"
	case SchemaFrnHistory:
		return "FrnHistory"
	case SchemaLicenseeIDHistory:
		return "LicenseeIdHistory"
	case SchemaApplicationField:
		return "ApplicationField"
	case SchemaApplicationActionHistory:
		return "ApplicationActionHistory"
	case SchemaApplicationAttachments:
		return "ApplicationAttachments"
	case SchemaApplicationVanityCallsigns:
		return "ApplicationVanityCallsigns"
	default:
		return "Generic"
	}
}
