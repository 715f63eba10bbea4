package mail

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers account lifecycle notifications. Implementations must be
// safe for concurrent use; callers treat delivery as fire-and-forget.
type Mailer interface {
	SendWelcome(to string) error
}

type SendGrid struct {
	client *sendgrid.Client
	from   string
}

func NewSendGrid(apiKey, from string) *SendGrid {
	return &SendGrid{client: sendgrid.NewSendClient(apiKey), from: from}
}

func (m *SendGrid) SendWelcome(to string) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail("", m.from),
		"Registration complete",
		sgmail.NewEmail("", to),
		"Thanks for registering",
		"<h1>Thanks for registering</h1>",
	)
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// Noop is used when no mail credential is configured.
type Noop struct{}

func (Noop) SendWelcome(string) error { return nil }
