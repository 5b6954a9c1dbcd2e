package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

// stepTemplate wraps a sequence step body the same way the engine renders
// it, so test sends look like the real thing.
var stepTemplate = template.Must(template.New("step").Parse(`<html>
<body style="font-family: sans-serif;">
<p>Hi {{.LeadName}},</p>
<div>{{.Body}}</div>
{{if .CalendarLink}}<p><a href="{{.CalendarLink}}">Book a time here</a></p>{{end}}
<p style="color:#888;font-size:12px;">Sent from campaign "{{.CampaignName}}" (test send)</p>
</body>
</html>`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = user
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendStep delivers one rendered sequence step to a single address.
func (s *EmailSender) SendStep(to, subject string, data StepEmailData) error {
	var body bytes.Buffer
	if err := stepTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering step email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending step email over SMTP: %w", err)
	}

	return nil
}
