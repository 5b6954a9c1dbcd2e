package usecase

type CreateCampaignInput struct {
	Name         string `json:"name"`
	Offer        string `json:"offer"`
	CalendarLink string `json:"calendar_link"`
	Goal         string `json:"goal"`
}

type CreateCampaignOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type StartCampaignOutput struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	LeadCount      int    `json:"lead_count"`
	WebhookWarning string `json:"webhook_warning,omitempty"` // set when the automation hook failed
}

// LeadField names a column target the CSV mapper can assign.
type LeadField string

const (
	FieldFirstName LeadField = "first_name"
	FieldLastName  LeadField = "last_name"
	FieldFullName  LeadField = "full_name"
	FieldEmail     LeadField = "email"
	FieldPhone     LeadField = "phone"
	FieldCompany   LeadField = "company"
	FieldJobTitle  LeadField = "job_title"
	FieldIgnored   LeadField = ""
)

// ColumnMapping maps CSV column index -> lead field.
type ColumnMapping map[int]LeadField

// PreviewOutput is what the UI shows before the user confirms an import.
type PreviewOutput struct {
	FileName  string          `json:"file_name"`
	Columns   []PreviewColumn `json:"columns"`
	Rows      []ParsedLead    `json:"rows"` // first few parsed rows
	TotalRows int             `json:"total_rows"`
	Warnings  []string        `json:"warnings,omitempty"`
}

type PreviewColumn struct {
	Index  int    `json:"index"`
	Header string `json:"header"`
	Field  string `json:"field"` // mapped lead field, "" when ignored
}

// ParsedLead is one CSV row after mapping, before validation.
type ParsedLead struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
}

type ImportLeadsInput struct {
	CampaignID string
	UserID     string
	FileName   string
	Data       []byte
	// Mapping overrides the inferred one when the user adjusted columns in
	// the preview. Nil means infer from the header again.
	Mapping ColumnMapping
}

type ImportLeadsOutput struct {
	ImportID     string   `json:"import_id"`
	TotalRows    int      `json:"total_rows"`
	ImportedRows int      `json:"imported_rows"`
	SkippedRows  int      `json:"skipped_rows"`
	InvalidRows  int      `json:"invalid_rows"`
	RowErrors    []string `json:"row_errors,omitempty"`
	Status       string   `json:"status"`
}

type SendTestStepInput struct {
	CampaignID string `json:"campaign_id"`
	StepID     string `json:"step_id"`
	// Where the test goes; email address or phone depending on channel.
	Recipient string `json:"recipient"`
	LeadName  string `json:"lead_name"` // placeholder name for rendering
}

type RecordChannelEventInput struct {
	LeadID  string `json:"lead_id"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
}

type RecordChannelEventOutput struct {
	LeadID  string `json:"lead_id"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
	// Advanced reports whether the sequence cursor moved with this event.
	Advanced bool `json:"advanced"`
}

type TriggerEngineInput struct {
	CampaignID string
	UserID     string
	Channel    string
	// TrainingResourceID optionally attaches a FILE training resource.
	TrainingResourceID string
}
