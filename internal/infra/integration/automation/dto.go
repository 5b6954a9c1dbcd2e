package automation

// StartCampaignInput is the JSON payload for the "start campaign" hook.
type StartCampaignInput struct {
	CampaignID   string `json:"campaign_id"`
	UserID       string `json:"user_id"`
	CampaignName string `json:"campaign_name"`
	Offer        string `json:"offer"`
	CalendarLink string `json:"calendar_link,omitempty"`
	Goal         string `json:"goal,omitempty"`
	LeadCount    int    `json:"lead_count"`
}

// TriggerEngineInput fires the external channel engine for a campaign.
// TrainingFile, when set, is attached as a multipart file part.
type TriggerEngineInput struct {
	CampaignID   string `json:"campaign_id"`
	UserID       string `json:"user_id"`
	Channel      string `json:"channel,omitempty"` // empty means all channels
	TrainingFile *FileAttachment `json:"-"`
}

type FileAttachment struct {
	Name    string
	Content []byte
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
