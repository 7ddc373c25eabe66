// Package whatsapp defines the contract for sending WhatsApp messages.
//
// The main purpose is to keep the rest of the application independent from a
// specific messaging provider. Use cases work with the Sender interface; the
// concrete delivery mechanism (Twilio) is implemented elsewhere in this
// package.
package whatsapp

import "context"

// Sender delivers a WhatsApp message to a phone number.
type Sender interface {
	// Send delivers body to the E.164 phone number. Best effort: callers
	// decide whether a failure is fatal.
	Send(ctx context.Context, phone, body string) error
}
