package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type StepEmailData struct {
	LeadName     string
	CampaignName string
	Body         string
	CalendarLink string
}
