package records

import (
	"github.com/tsawler/ae7q/model"
)

// Record is one data row projected into named fields. Every concrete
// record type in this package implements it.
type Record interface {
	Schema() model.Schema
}

// FileNumber is a ULS file number with its filing-type annotation, as in
// "0008963527 (Online)".
type FileNumber struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Conditions is a license condition notice.
type Conditions struct {
	Conditions model.Value `json:"conditions"`
}

// CallHistory is one license period of a callsign.
type CallHistory struct {
	EntityName    model.Value `json:"entity_name"`
	ApplicantType model.Value `json:"applicant_type"`
	OperatorClass model.Value `json:"operator_class"`
	RegionState   model.Value `json:"region_state"`
	LicenseStatus model.Value `json:"license_status"`
	GrantDate     model.Value `json:"grant_date"`
	EffectiveDate model.Value `json:"effective_date"`
	CancelDate    model.Value `json:"cancel_date"`
	ExpireDate    model.Value `json:"expire_date"`
}

// Trustee is a club station held by the queried trustee callsign.
type Trustee struct {
	Callsign      model.Value `json:"callsign"`
	RegionState   model.Value `json:"region_state"`
	EntityName    model.Value `json:"entity_name"`
	ApplicantType model.Value `json:"applicant_type"`
	LicenseStatus model.Value `json:"license_status"`
	GrantDate     model.Value `json:"grant_date"`
	EffectiveDate model.Value `json:"effective_date"`
	CancelDate    model.Value `json:"cancel_date"`
	ExpireDate    model.Value `json:"expire_date"`
}

// ApplicationsHistory is an application filed for a callsign.
type ApplicationsHistory struct {
	ReceiptDate         model.Value `json:"receipt_date"`
	ApplicationCallsign model.Value `json:"application_callsign"`
	RegionState         model.Value `json:"region_state"`
	EntityName          model.Value `json:"entity_name"`
	ULSFileNumber       FileNumber  `json:"uls_file_number"`
	ApplicationPurpose  model.Value `json:"application_purpose"`
	PaymentDate         model.Value `json:"payment_date"`
	LastActionDate      model.Value `json:"last_action_date"`
	ApplicationStatus   model.Value `json:"application_status"`
}

// VanityApplicationsHistory is an application filed under an FRN or
// licensee ID, with every vanity callsign it requested.
type VanityApplicationsHistory struct {
	ReceiptDate         model.Value   `json:"receipt_date"`
	ApplicationCallsign model.Value   `json:"application_callsign"`
	RegionState         model.Value   `json:"region_state"`
	OperatorClass       model.Value   `json:"operator_class"`
	ULSFileNumber       FileNumber    `json:"uls_file_number"`
	ApplicationPurpose  model.Value   `json:"application_purpose"`
	PaymentDate         model.Value   `json:"payment_date"`
	LastActionDate      model.Value   `json:"last_action_date"`
	ApplicationStatus   model.Value   `json:"application_status"`
	AppliedCallsigns    []model.Value `json:"applied_callsigns"`
}

// PendingPredictions is a pending vanity application and its predicted
// outcome, as listed for an FRN or licensee ID.
type PendingPredictions struct {
	ReceiptDate       model.Value `json:"receipt_date"`
	ProcessDate       model.Value `json:"process_date"`
	ApplicantCallsign model.Value `json:"applicant_callsign"`
	RegionState       model.Value `json:"region_state"`
	OperatorClass     model.Value `json:"operator_class"`
	ULSFileNumber     model.Value `json:"uls_file_number"`
	VanityType        model.Value `json:"vanity_type"`
	SequentialNumber  model.Value `json:"sequential_number"`
	VanityCallsign    model.Value `json:"vanity_callsign"`
	Prediction        model.Value `json:"prediction"`
}

// CallsignPendingPredictions is a pending application for the queried
// callsign and its predicted outcome.
type CallsignPendingPredictions struct {
	ReceiptDate       model.Value `json:"receipt_date"`
	ProcessDate       model.Value `json:"process_date"`
	ApplicantCallsign model.Value `json:"applicant_callsign"`
	OperatorClass     model.Value `json:"operator_class"`
	RegionState       model.Value `json:"region_state"`
	ULSFileNumber     model.Value `json:"uls_file_number"`
	VanityType        model.Value `json:"vanity_type"`
	SequentialNumber  model.Value `json:"sequential_number"`
	Prediction        model.Value `json:"prediction"`
}

// EventCallsign is a special event callsign assignment.
type EventCallsign struct {
	StartDate  model.Value `json:"start_date"`
	EndDate    model.Value `json:"end_date"`
	Callsign   model.Value `json:"callsign"`
	EntityName model.Value `json:"entity_name"`
	EventName  model.Value `json:"event_name"`
}

// FrnHistory is a license held under the queried FRN.
type FrnHistory struct {
	Callsign      model.Value `json:"callsign"`
	RegionState   model.Value `json:"region_state"`
	EntityName    model.Value `json:"entity_name"`
	ApplicantType model.Value `json:"applicant_type"`
	OperatorClass model.Value `json:"operator_class"`
	LicenseStatus model.Value `json:"license_status"`
	GrantDate     model.Value `json:"grant_date"`
	EffectiveDate model.Value `json:"effective_date"`
	CancelDate    model.Value `json:"cancel_date"`
	ExpireDate    model.Value `json:"expire_date"`
}

// LicenseeIDHistory is a license held under the queried licensee ID.
type LicenseeIDHistory struct {
	Callsign      model.Value `json:"callsign"`
	RegionState   model.Value `json:"region_state"`
	EntityName    model.Value `json:"entity_name"`
	ApplicantType model.Value `json:"applicant_type"`
	OperatorClass model.Value `json:"operator_class"`
	LicenseStatus model.Value `json:"license_status"`
	GrantDate     model.Value `json:"grant_date"`
	EffectiveDate model.Value `json:"effective_date"`
	CancelDate    model.Value `json:"cancel_date"`
	ExpireDate    model.Value `json:"expire_date"`
}

// ApplicationField is one name/value line of an application's details.
type ApplicationField struct {
	Name model.Value `json:"name"`
	Data model.Value `json:"data"`
}

// ApplicationAction is one entry of an application's action history.
type ApplicationAction struct {
	ActionDate model.Value `json:"action_date"`
	ActionType model.Value `json:"action_type"`
}

// ApplicationAttachment is a document attached to an application.
type ApplicationAttachment struct {
	Date        model.Value `json:"date"`
	Type        model.Value `json:"type"`
	Description model.Value `json:"description"`
	Result      model.Value `json:"result"`
}

// ApplicationVanityCallsign is one callsign requested by a vanity
// application. Prediction is only set when the site lists one.
type ApplicationVanityCallsign struct {
	SequenceNumber model.Value  `json:"sequence_number"`
	Callsign       model.Value  `json:"callsign"`
	Prediction     *model.Value `json:"prediction"`
}

func (Conditions) Schema() model.Schema                 { return model.SchemaConditions }
func (CallHistory) Schema() model.Schema                { return model.SchemaCallHistory }
func (Trustee) Schema() model.Schema                    { return model.SchemaTrustee }
func (ApplicationsHistory) Schema() model.Schema        { return model.SchemaApplicationsHistory }
func (VanityApplicationsHistory) Schema() model.Schema  { return model.SchemaVanityApplicationsHistory }
func (PendingPredictions) Schema() model.Schema         { return model.SchemaPendingPredictions }
func (CallsignPendingPredictions) Schema() model.Schema { return model.SchemaCallsignPendingPredictions }
func (EventCallsign) Schema() model.Schema              { return model.SchemaEventCallsign }
func (FrnHistory) Schema() model.Schema                 { return model.SchemaFrnHistory }
func (LicenseeIDHistory) Schema() model.Schema          { return model.SchemaLicenseeIDHistory }
func (ApplicationField) Schema() model.Schema           { return model.SchemaApplicationField }
func (ApplicationAction) Schema() model.Schema          { return model.SchemaApplicationActionHistory }
func (ApplicationAttachment) Schema() model.Schema      { return model.SchemaApplicationAttachments }
func (ApplicationVanityCallsign) Schema() model.Schema  { return model.SchemaApplicationVanityCallsigns }
