package whatsapp

import (
	"context"
	"errors"
	"testing"
)

func TestNewTwilioToleratesMissingCredentials(t *testing.T) {
	sender, err := NewTwilio(TwilioConfig{})
	if err != nil {
		t.Fatalf("NewTwilio() error = %v, want construction to succeed unconfigured", err)
	}

	err = sender.Send(context.Background(), "+6281234567890", "hello")
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("Send() error = %v, want ErrMissingCredentials", err)
	}
}

func TestNewTwilioWithCredentials(t *testing.T) {
	sender, err := NewTwilio(TwilioConfig{
		AccountSID: "AC00000000000000000000000000000000",
		AuthToken:  "secret",
		From:       "+14155238886",
	})
	if err != nil {
		t.Fatalf("NewTwilio() error = %v", err)
	}
	if sender.client == nil {
		t.Fatal("expected a configured rest client")
	}
	if sender.from != "+14155238886" {
		t.Fatalf("from = %q", sender.from)
	}
}
