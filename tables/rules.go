package tables

import (
	"github.com/tsawler/ae7q/model"
)

// The rule lists below mirror the site's pages one query type at a time.
// Several shapes (the ten-column "Prediction" tables in particular) appear
// under more than one query with different layouts, so the lists are kept
// separate and their order is significant.

// CallRules classifies the tables of a callsign history page.
var CallRules = RuleSet{
	Name: "call",
	Rules: []Rule{
		{
			Name:   "conditions",
			Schema: model.SchemaConditions,
			Header: model.NoHeader,
			Match:  all(rowCount(1), rowLen(0, 1)),
		},
		{
			Name:   "call history",
			Schema: model.SchemaCallHistory,
			Header: 0,
			Match:  all(rowLen(0, 9), cellText(0, 0, "Entity Name")),
		},
		{
			Name:   "trustee",
			Schema: model.SchemaTrustee,
			Header: 1,
			Match:  all(rowLen(0, 1), rowLen(1, 9), cellText(1, 0, "Callsign")),
		},
		{
			Name:   "pending application predictions",
			Schema: model.SchemaCallsignPendingPredictions,
			Header: 0,
			Match:  lastText(0, "Prediction"),
		},
		{
			Name:   "application history",
			Schema: model.SchemaApplicationsHistory,
			Header: 0,
			Match:  all(rowLen(0, 9), cellText(0, 0, "Receipt Date")),
		},
		{
			Name:   "event callsign",
			Schema: model.SchemaEventCallsign,
			Header: 0,
			Match:  all(rowLen(0, 5), cellText(0, 0, "Start Date")),
		},
	},
	FallbackHeader: model.NoHeader,
}

// FrnRules classifies the tables of an FRN history page.
var FrnRules = RuleSet{
	Name: "frn",
	Rules: []Rule{
		{
			Name:   "frn history",
			Schema: model.SchemaFrnHistory,
			Header: 1,
			Match:  all(rowLen(0, 1), rowLen(1, 10), cellText(1, 0, "Callsign")),
		},
		{
			Name:   "pending application predictions",
			Schema: model.SchemaPendingPredictions,
			Header: 0,
			Match:  all(rowLen(0, 10), lastText(0, "Prediction")),
		},
		{
			Name:   "vanity application history",
			Schema: model.SchemaVanityApplicationsHistory,
			Header: 0,
			Match:  all(rowLen(0, 10), cellText(0, 0, "Receipt Date")),
		},
	},
	FallbackHeader: model.NoHeader,
}

// LicenseeRules classifies the tables of a licensee ID history page.
var LicenseeRules = RuleSet{
	Name: "licensee",
	Rules: []Rule{
		{
			Name:   "licensee id history",
			Schema: model.SchemaLicenseeIDHistory,
			Header: 1,
			Match:  all(rowLen(0, 1), rowLen(1, 10), cellText(1, 0, "Callsign")),
		},
		{
			Name:   "pending application predictions",
			Schema: model.SchemaPendingPredictions,
			Header: 0,
			Match:  all(rowLen(0, 10), lastText(0, "Prediction")),
		},
		{
			Name:   "vanity application history",
			Schema: model.SchemaVanityApplicationsHistory,
			Header: 0,
			Match:  all(rowLen(0, 10), cellText(0, 0, "Receipt Date")),
		},
	},
	FallbackHeader: model.NoHeader,
}

// ApplicationRules classifies the tables of an application detail page.
var ApplicationRules = RuleSet{
	Name: "application",
	Rules: []Rule{
		{
			Name:    "application fields",
			Schema:  model.SchemaApplicationField,
			Header:  1,
			Relabel: map[int]string{1: "Data"},
			Match:   cellText(0, 0, "Field Name"),
		},
		{
			Name:   "action history",
			Schema: model.SchemaApplicationActionHistory,
			Header: 0,
			Match:  cellText(0, 0, "Action Date"),
		},
		{
			Name:   "attachments",
			Schema: model.SchemaApplicationAttachments,
			Header: 1,
			Match:  cellText(0, 0, "Attachment records"),
		},
		{
			Name:   "vanity callsigns",
			Schema: model.SchemaApplicationVanityCallsigns,
			Header: 0,
			Match:  cellText(0, 1, "Vanity Callsign"),
		},
	},
	FallbackHeader: 0,
}
