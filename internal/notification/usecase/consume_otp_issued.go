package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thearvan/arvan-backend/internal/pkg/idempotency"
)

type ConsumeOtpIssuedInput struct {
	Phone     string `validate:"required,e164"`
	Code      string `validate:"required,otpcode"`
	Purpose   string `validate:"required"`
	TokenHash string `validate:"required"`
}

// ConsumeOtpIssued delivers a one-time code over WhatsApp. Delivery is deduped
// per challenge token and never retried; a failed send is logged and dropped,
// the user can resend.
func (s *Usecase) ConsumeOtpIssued(ctx context.Context, in ConsumeOtpIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOtpIssued")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	err := s.idemp.Exec(ctx, "otp_issued:"+in.TokenHash, func(ctx context.Context) error {
		body := s.otpMessageBody(in)
		if err := s.repoWhatsApp.Send(ctx, in.Phone, body); err != nil {
			slog.ErrorContext(ctx, "failed to send otp over whatsapp", "phone", in.Phone, "purpose", in.Purpose, "error", err)
		}
		return nil
	})
	if errors.Is(err, idempotency.ErrAlreadyCompleted) || errors.Is(err, idempotency.ErrAlreadyInProgress) {
		slog.InfoContext(ctx, "otp delivery already handled for challenge", "phone", in.Phone)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to track otp delivery", "phone", in.Phone, "error", err)
		return err
	}

	return nil
}

func (s *Usecase) otpMessageBody(in ConsumeOtpIssuedInput) string {
	appName := s.cfg.GetString("app.name")

	switch in.Purpose {
	case "password-reset":
		return fmt.Sprintf("%s is your %s password reset code. Do not share it with anyone.", in.Code, appName)
	case "signup-verify":
		return fmt.Sprintf("%s is your %s verification code. Welcome aboard!", in.Code, appName)
	default:
		return fmt.Sprintf("%s is your %s login code. It expires soon.", in.Code, appName)
	}
}
