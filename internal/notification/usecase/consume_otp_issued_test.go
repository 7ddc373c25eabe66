package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConsumeOtpIssuedSendsOverWhatsApp(t *testing.T) {
	fx := newFixture(t)

	in := ConsumeOtpIssuedInput{Phone: "+6289876543210", Code: "123456", Purpose: "login", TokenHash: "hash-a"}
	if err := fx.uc.ConsumeOtpIssued(context.Background(), in); err != nil {
		t.Fatalf("ConsumeOtpIssued() error = %v", err)
	}

	if len(fx.wa.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(fx.wa.sent))
	}
	msg := fx.wa.sent[0]
	if msg.phone != "+6289876543210" {
		t.Fatalf("phone = %q", msg.phone)
	}
	if !strings.Contains(msg.body, "123456") || !strings.Contains(msg.body, "The Arvan") {
		t.Fatalf("body = %q, want code and app name", msg.body)
	}
}

func TestConsumeOtpIssuedBodyVariesByPurpose(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		purpose string
		hash    string
		want    string
	}{
		{purpose: "login", hash: "h1", want: "login code"},
		{purpose: "signup-verify", hash: "h2", want: "verification code"},
		{purpose: "password-reset", hash: "h3", want: "password reset code"},
	}

	for _, tc := range cases {
		in := ConsumeOtpIssuedInput{Phone: "+6289876543210", Code: "123456", Purpose: tc.purpose, TokenHash: tc.hash}
		if err := fx.uc.ConsumeOtpIssued(ctx, in); err != nil {
			t.Fatalf("ConsumeOtpIssued(%s) error = %v", tc.purpose, err)
		}
	}

	if len(fx.wa.sent) != len(cases) {
		t.Fatalf("sent = %d, want %d", len(fx.wa.sent), len(cases))
	}
	for i, tc := range cases {
		if !strings.Contains(fx.wa.sent[i].body, tc.want) {
			t.Fatalf("purpose %s body = %q, want %q", tc.purpose, fx.wa.sent[i].body, tc.want)
		}
	}
}

func TestConsumeOtpIssuedDedupesPerChallenge(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	in := ConsumeOtpIssuedInput{Phone: "+6289876543210", Code: "123456", Purpose: "login", TokenHash: "hash-a"}
	if err := fx.uc.ConsumeOtpIssued(ctx, in); err != nil {
		t.Fatalf("first ConsumeOtpIssued() error = %v", err)
	}
	if err := fx.uc.ConsumeOtpIssued(ctx, in); err != nil {
		t.Fatalf("duplicate ConsumeOtpIssued() error = %v, want nil", err)
	}

	if len(fx.wa.sent) != 1 {
		t.Fatalf("sent = %d, want exactly 1 delivery per challenge", len(fx.wa.sent))
	}
}

func TestConsumeOtpIssuedSendFailureIsSwallowed(t *testing.T) {
	fx := newFixture(t)
	fx.wa.err = errors.New("provider down")

	in := ConsumeOtpIssuedInput{Phone: "+6289876543210", Code: "123456", Purpose: "login", TokenHash: "hash-a"}
	if err := fx.uc.ConsumeOtpIssued(context.Background(), in); err != nil {
		t.Fatalf("ConsumeOtpIssued() error = %v, want nil on send failure", err)
	}

	// The attempt still counts as handled; a later duplicate is not retried.
	fx.wa.err = nil
	if err := fx.uc.ConsumeOtpIssued(context.Background(), in); err != nil {
		t.Fatalf("duplicate ConsumeOtpIssued() error = %v", err)
	}
	if len(fx.wa.sent) != 0 {
		t.Fatalf("sent = %d, want 0 (failed delivery is never retried)", len(fx.wa.sent))
	}
}

func TestConsumeOtpIssuedInvalidPayloadIsDropped(t *testing.T) {
	fx := newFixture(t)

	in := ConsumeOtpIssuedInput{Phone: "not-a-phone", Code: "123456", Purpose: "login", TokenHash: "hash-a"}
	if err := fx.uc.ConsumeOtpIssued(context.Background(), in); err != nil {
		t.Fatalf("ConsumeOtpIssued() error = %v, want nil for malformed payload", err)
	}
	if len(fx.wa.sent) != 0 {
		t.Fatal("malformed payload must not be delivered")
	}
}
