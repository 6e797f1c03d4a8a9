package ae7q

import (
	"github.com/tsawler/ae7q/model"
	"github.com/tsawler/ae7q/records"
)

// Data is the aggregated result of one query.
type Data interface {
	// QueryKind returns the kind of query the data answers
	QueryKind() Kind
}

// CallData is the history of a US callsign. Each section comes from the
// first table of its schema; a section the page lacks is nil.
type CallData struct {
	Query  string        `json:"query"`
	Tables []TableResult `json:"-"`

	Conditions          []records.Conditions                 `json:"conditions,omitempty"`
	CallHistory         []records.CallHistory                `json:"call_history,omitempty"`
	TrusteeHistory      []records.Trustee                    `json:"trustee_history,omitempty"`
	ApplicationHistory  []records.ApplicationsHistory        `json:"application_history,omitempty"`
	PendingApplications []records.CallsignPendingPredictions `json:"pending_applications,omitempty"`
	EventCallsigns      []records.EventCallsign              `json:"event_callsigns,omitempty"`
}

// CanadianCallData is the registration of a Canadian callsign, read from
// the key/value rows of the page's first table.
type CanadianCallData struct {
	Query  string        `json:"query"`
	Tables []TableResult `json:"-"`

	Callsign       model.Value `json:"callsign"`
	GivenNames     model.Value `json:"given_names"`
	Surname        model.Value `json:"surname"`
	Address        model.Value `json:"address"`
	Locality       model.Value `json:"locality"`
	Province       model.Value `json:"province"`
	PostalCode     model.Value `json:"postal_code"`
	Country        model.Value `json:"country"`
	Region         model.Value `json:"region"`
	GridSquare     model.Value `json:"grid_square"`
	Qualifications model.Value `json:"qualifications"`
}

// FrnData is the license and application history of an FRN.
type FrnData struct {
	Query  string        `json:"query"`
	Tables []TableResult `json:"-"`

	FrnHistory          []records.FrnHistory                `json:"frn_history,omitempty"`
	ApplicationHistory  []records.VanityApplicationsHistory `json:"application_history,omitempty"`
	PendingApplications []records.PendingPredictions        `json:"pending_applications,omitempty"`
}

// LicenseeData is the license and application history of a licensee ID.
type LicenseeData struct {
	Query  string        `json:"query"`
	Tables []TableResult `json:"-"`

	LicenseeIDHistory   []records.LicenseeIDHistory         `json:"licensee_id_history,omitempty"`
	ApplicationHistory  []records.VanityApplicationsHistory `json:"application_history,omitempty"`
	PendingApplications []records.PendingPredictions        `json:"pending_applications,omitempty"`
}

// ApplicationData is the detail page of one ULS application. The scalar
// fields come from the page's field/value table; only the first occurrence
// of each field is kept, except Zip Location which may appear twice.
type ApplicationData struct {
	Query  string        `json:"query"`
	Tables []TableResult `json:"-"`

	FRN                   model.Value   `json:"frn"`
	LicenseeID            model.Value   `json:"licensee_id"`
	ApplicantType         model.Value   `json:"applicant_type"`
	EntityType            model.Value   `json:"entity_type"`
	EntityName            model.Value   `json:"entity_name"`
	Attention             model.Value   `json:"attention"`
	FirstName             model.Value   `json:"first_name"`
	MiddleInitial         model.Value   `json:"middle_initial"`
	LastName              model.Value   `json:"last_name"`
	NameSuffix            model.Value   `json:"name_suffix"`
	StreetAddress         model.Value   `json:"street_address"`
	POBox                 model.Value   `json:"po_box"`
	Locality              model.Value   `json:"locality"`
	County                model.Value   `json:"county"`
	State                 model.Value   `json:"state"`
	PostalCode            model.Value   `json:"postal_code"`
	ZipLocation           []model.Value `json:"zip_location,omitempty"`
	Maidenhead            model.Value   `json:"maidenhead"`
	ULSGeoRegion          model.Value   `json:"uls_geo_region"`
	Callsign              model.Value   `json:"callsign"`
	RadioService          model.Value   `json:"radio_service"`
	LastActionDate        model.Value   `json:"last_action_date"`
	ReceiptDate           model.Value   `json:"receipt_date"`
	EnteredTimestamp      model.Value   `json:"entered_timestamp"`
	ApplicationSource     model.Value   `json:"application_source"`
	OriginalPurpose       model.Value   `json:"original_purpose"`
	ApplicationPurpose    model.Value   `json:"application_purpose"`
	Result                model.Value   `json:"result"`
	FeeControlNumber      model.Value   `json:"fee_control_number"`
	PaymentDate           model.Value   `json:"payment_date"`
	OriginalReceipt       model.Value   `json:"original_receipt"`
	OperatorClass         model.Value   `json:"operator_class"`
	OperatorGroup         model.Value   `json:"operator_group"`
	ULSGroup              model.Value   `json:"uls_group"`
	NewSequentialCallsign bool          `json:"new_sequential_callsign"`
	VanityType            model.Value   `json:"vanity_type"`
	VanityRelationship    model.Value   `json:"vanity_relationship"`
	IsFromVEC             bool          `json:"is_from_vec"`
	IsTrustee             bool          `json:"is_trustee"`
	TrusteeCallsign       model.Value   `json:"trustee_callsign"`
	TrusteeName           model.Value   `json:"trustee_name"`

	ActionHistory   []records.ApplicationAction         `json:"action_history,omitempty"`
	VanityCallsigns []records.ApplicationVanityCallsign `json:"vanity_callsigns,omitempty"`
	Attachments     []records.ApplicationAttachment     `json:"attachments,omitempty"`
}

func (*CallData) QueryKind() Kind         { return CallQuery }
func (*CanadianCallData) QueryKind() Kind { return CallQuery }
func (*FrnData) QueryKind() Kind          { return FrnQuery }
func (*LicenseeData) QueryKind() Kind     { return LicenseeQuery }
func (*ApplicationData) QueryKind() Kind  { return ApplicationQuery }

// maxZipLocations is how many Zip Location rows an application page lists.
const maxZipLocations = 2

// Data reads the page and aggregates it according to the extractor's kind.
// Call queries for a Canadian callsign produce *CanadianCallData.
//
// Example:
//
//	data, warnings, err := ae7q.Open("kn8u.html").Query("kn8u").Data()
//	out, _ := json.MarshalIndent(data, "", "  ")
func (e *Extractor) Data() (Data, []Warning, error) {
	switch e.options.kind {
	case FrnQuery:
		return e.FrnData()
	case LicenseeQuery:
		return e.LicenseeData()
	case ApplicationQuery:
		return e.ApplicationData()
	}
	if e.IsCanadian() {
		return e.CanadianCallData()
	}
	return e.CallData()
}

// CallData reads the page as a US callsign history.
func (e *Extractor) CallData() (*CallData, []Warning, error) {
	results, warnings, err := e.Kind(CallQuery).Tables()
	if err != nil {
		return nil, nil, err
	}

	return &CallData{
		Query:               e.options.query,
		Tables:              results,
		Conditions:          firstRecords[records.Conditions](results, model.SchemaConditions),
		CallHistory:         firstRecords[records.CallHistory](results, model.SchemaCallHistory),
		TrusteeHistory:      firstRecords[records.Trustee](results, model.SchemaTrustee),
		ApplicationHistory:  firstRecords[records.ApplicationsHistory](results, model.SchemaApplicationsHistory),
		PendingApplications: firstRecords[records.CallsignPendingPredictions](results, model.SchemaCallsignPendingPredictions),
		EventCallsigns:      firstRecords[records.EventCallsign](results, model.SchemaEventCallsign),
	}, warnings, nil
}

// CanadianCallData reads the page as a Canadian callsign registration.
// The first table's title row is skipped and every following row is read
// as a label and its value.
func (e *Extractor) CanadianCallData() (*CanadianCallData, []Warning, error) {
	results, warnings, err := e.Kind(CallQuery).Tables()
	if err != nil {
		return nil, nil, err
	}

	data := &CanadianCallData{Query: e.options.query, Tables: results}
	if len(results) == 0 || results[0].Grid == nil {
		warnings = append(warnings, Warning{Table: DocumentWarning, Message: "no callsign table found"})
		return data, warnings, nil
	}

	fields := map[string]*model.Value{
		"Callsign":       &data.Callsign,
		"Given Names":    &data.GivenNames,
		"Surname":        &data.Surname,
		"Street Address": &data.Address,
		"Locality":       &data.Locality,
		"Province":       &data.Province,
		"Postal Code":    &data.PostalCode,
		"Country":        &data.Country,
		"Region":         &data.Region,
		"Maidenhead":     &data.GridSquare,
		"Qualifications": &data.Qualifications,
	}
	seen := make(map[string]bool)
	for _, row := range results[0].Grid[1:] {
		label := row.Cell(0).String()
		if dst, ok := fields[label]; ok && !seen[label] {
			*dst = row.Cell(1)
			seen[label] = true
		}
	}

	return data, warnings, nil
}

// FrnData reads the page as an FRN history.
func (e *Extractor) FrnData() (*FrnData, []Warning, error) {
	results, warnings, err := e.Kind(FrnQuery).Tables()
	if err != nil {
		return nil, nil, err
	}

	return &FrnData{
		Query:               e.options.query,
		Tables:              results,
		FrnHistory:          firstRecords[records.FrnHistory](results, model.SchemaFrnHistory),
		ApplicationHistory:  firstRecords[records.VanityApplicationsHistory](results, model.SchemaVanityApplicationsHistory),
		PendingApplications: firstRecords[records.PendingPredictions](results, model.SchemaPendingPredictions),
	}, warnings, nil
}

// LicenseeData reads the page as a licensee ID history.
func (e *Extractor) LicenseeData() (*LicenseeData, []Warning, error) {
	results, warnings, err := e.Kind(LicenseeQuery).Tables()
	if err != nil {
		return nil, nil, err
	}

	return &LicenseeData{
		Query:               e.options.query,
		Tables:              results,
		LicenseeIDHistory:   firstRecords[records.LicenseeIDHistory](results, model.SchemaLicenseeIDHistory),
		ApplicationHistory:  firstRecords[records.VanityApplicationsHistory](results, model.SchemaVanityApplicationsHistory),
		PendingApplications: firstRecords[records.PendingPredictions](results, model.SchemaPendingPredictions),
	}, warnings, nil
}

// ApplicationData reads the page as an application detail page.
func (e *Extractor) ApplicationData() (*ApplicationData, []Warning, error) {
	results, warnings, err := e.Kind(ApplicationQuery).Tables()
	if err != nil {
		return nil, nil, err
	}

	data := &ApplicationData{
		Query:           e.options.query,
		Tables:          results,
		ActionHistory:   firstRecords[records.ApplicationAction](results, model.SchemaApplicationActionHistory),
		VanityCallsigns: firstRecords[records.ApplicationVanityCallsign](results, model.SchemaApplicationVanityCallsigns),
		Attachments:     firstRecords[records.ApplicationAttachment](results, model.SchemaApplicationAttachments),
	}

	values := map[string]*model.Value{
		"FRN":                 &data.FRN,
		"Licensee ID/SGIN":    &data.LicenseeID,
		"Applicant Type":      &data.ApplicantType,
		"Entity Type":         &data.EntityType,
		"Entity Name":         &data.EntityName,
		"Attention":           &data.Attention,
		"First Name":          &data.FirstName,
		"Middle Init":         &data.MiddleInitial,
		"Last Name":           &data.LastName,
		"Name Suffix":         &data.NameSuffix,
		"Street Address":      &data.StreetAddress,
		"Po Box":              &data.POBox,
		"Locality":            &data.Locality,
		"County":              &data.County,
		"State":               &data.State,
		"Postal Code":         &data.PostalCode,
		"Maidenhead":          &data.Maidenhead,
		"ULS/Geo Region":      &data.ULSGeoRegion,
		"Callsign":            &data.Callsign,
		"Radio Service":       &data.RadioService,
		"Last Action Date":    &data.LastActionDate,
		"Receipt Date":        &data.ReceiptDate,
		"Entered Timestamp":   &data.EnteredTimestamp,
		"App Source":          &data.ApplicationSource,
		"Orig Purpose":        &data.OriginalPurpose,
		"App Purpose":         &data.ApplicationPurpose,
		"Result":              &data.Result,
		"Fee Control Num":     &data.FeeControlNumber,
		"Payment Date":        &data.PaymentDate,
		"Orig Receipt":        &data.OriginalReceipt,
		"Operator Class":      &data.OperatorClass,
		"Operator Group":      &data.OperatorGroup,
		"Uls Group":           &data.ULSGroup,
		"Vanity Type":         &data.VanityType,
		"Vanity Relationship": &data.VanityRelationship,
		"Trustee Callsign":    &data.TrusteeCallsign,
		"Trustee Name":        &data.TrusteeName,
	}
	flags := map[string]*bool{
		"New Seq Callsign": &data.NewSequentialCallsign,
		"Is From Vec":      &data.IsFromVEC,
		"Is Trustee":       &data.IsTrustee,
	}

	seen := make(map[string]bool)
	for _, f := range firstRecords[records.ApplicationField](results, model.SchemaApplicationField) {
		name := f.Name.String()
		if name == "Zip Location" {
			if len(data.ZipLocation) < maxZipLocations {
				data.ZipLocation = append(data.ZipLocation, f.Data)
			}
			continue
		}
		if seen[name] {
			continue
		}
		if dst, ok := values[name]; ok {
			*dst = f.Data
			seen[name] = true
		} else if dst, ok := flags[name]; ok {
			*dst = records.Flag(f.Data)
			seen[name] = true
		}
	}

	return data, warnings, nil
}

// firstRecords returns the records of the first successfully processed
// table with schema s.
func firstRecords[T records.Record](results []TableResult, s model.Schema) []T {
	for _, r := range results {
		if r.Err != nil || r.Table == nil || r.Table.Schema != s {
			continue
		}
		out := make([]T, 0, len(r.Records))
		for _, rec := range r.Records {
			if v, ok := rec.(T); ok {
				out = append(out, v)
			}
		}
		return out
	}
	return nil
}
