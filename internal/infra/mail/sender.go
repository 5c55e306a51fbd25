package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/commonmodel/sync-engine/internal/usecase"
)

var failureTemplate = template.Must(template.New("sync_failure").Parse(`
<p>A sync run was moved to the dead-letter queue after retrying.</p>
<ul>
  <li>Provider: {{.ProviderName}}</li>
  <li>Object: {{.Object}}</li>
  <li>Customer: {{.CustomerID}}</li>
  <li>Run: {{.RunID}}</li>
</ul>
<p>Error: {{.Error}}</p>
<p>The watermark was not advanced; the window will replay once the cause is fixed.</p>
`))

type failureData struct {
	ProviderName string
	Object       string
	CustomerID   string
	RunID        string
	Error        string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) SendSyncFailure(event usecase.TriggerEvent, runErr error) error {
	data := failureData{
		ProviderName: event.ProviderName,
		Object:       event.Object,
		CustomerID:   event.CustomerID,
		RunID:        event.RunID,
		Error:        runErr.Error(),
	}

	var body bytes.Buffer
	if err := failureTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Sync failed: %s/%s for %s", event.ProviderName, event.Object, event.CustomerID))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending alert email: %w", err)
	}

	return nil
}
