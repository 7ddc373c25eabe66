package whatsapp

import (
	"context"
	"errors"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrMissingCredentials indicates a send was attempted without configured
// Twilio credentials.
var ErrMissingCredentials = errors.New("whatsapp: twilio account sid, auth token and from number are required")

// Twilio implements Sender using the Twilio WhatsApp channel.
type Twilio struct {
	client *twilio.RestClient
	from   string
}

// TwilioConfig defines the inputs for building a Twilio sender.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string // E.164 number provisioned for WhatsApp
}

// NewTwilio constructs a Twilio-backed WhatsApp sender. Missing credentials
// are tolerated here so the process can boot unconfigured; Send fails with
// ErrMissingCredentials until they are provided.
func NewTwilio(cfg TwilioConfig) (*Twilio, error) {
	t := &Twilio{from: cfg.From}

	if cfg.AccountSID != "" && cfg.AuthToken != "" && cfg.From != "" {
		t.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}

	return t, nil
}

// Send delivers body to the phone number over the WhatsApp channel.
func (t *Twilio) Send(_ context.Context, phone, body string) error {
	if t.client == nil {
		return ErrMissingCredentials
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo("whatsapp:" + phone)
	params.SetFrom("whatsapp:" + t.from)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	return err
}
