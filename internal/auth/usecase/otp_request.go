package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
)

type OtpRequestInput struct {
	Phone   string `validate:"required,e164"`
	Purpose string `validate:"required"`
}

type OtpChallengeOutput struct {
	ChallengeToken string
	ExpiresAt      time.Time
}

func (s *Usecase) OtpRequest(ctx context.Context, in OtpRequestInput) (*OtpChallengeOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpRequest")
	defer span.End()

	in.Phone = strings.TrimSpace(in.Phone)
	in.Purpose = strings.TrimSpace(strings.ToLower(in.Purpose))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	purpose := entity.ParsePurpose(in.Purpose)
	if !purpose.Valid() {
		return nil, goerror.NewInvalidInput(nil, "purpose", "must be one of login, signup-verify, password-reset")
	}

	return s.issueChallenge(ctx, in.Phone, purpose)
}

// issueChallenge is the shared core of request and resend. Delete-then-create
// keeps at most one live challenge per phone; the two statements are not
// atomic, verification re-checks the stored row anyway.
func (s *Usecase) issueChallenge(ctx context.Context, phone string, purpose entity.Purpose) (*OtpChallengeOutput, error) {
	allowed, err := s.limiter.Allow(ctx, "otp:"+phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check otp rate limit", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !allowed {
		return nil, goerror.NewBusiness("Too many code requests, try again later", goerror.CodeTooManyRequest)
	}

	if err := s.repoDB.DeleteChallengeByPhone(ctx, phone); err != nil {
		slog.ErrorContext(ctx, "failed to delete previous challenge", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := s.challengeTTL(purpose)
	token, err := s.jwt.Generate(jwt.Payload{Phone: phone, Purpose: purpose.String()}, ttl)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign challenge token", "error", err)
		return nil, goerror.NewServer(err)
	}

	tokenHash, err := s.hmac.Hash(token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash challenge token", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	challenge := entity.OtpChallenge{
		Phone:     phone,
		Code:      code,
		TokenHash: string(tokenHash),
		Purpose:   purpose,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.repoDB.CreateChallenge(ctx, challenge); err != nil {
		slog.ErrorContext(ctx, "failed to repo create challenge", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Delivery failure must never fail the request; the caller still holds a
	// usable challenge token and can resend.
	if err := s.repoMessaging.PublishOtpIssued(ctx, OtpIssuedEvent{
		Phone:     phone,
		Code:      code,
		Purpose:   purpose.String(),
		TokenHash: challenge.TokenHash,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp issued", "phone", phone, "error", err)
	}

	return &OtpChallengeOutput{ChallengeToken: token, ExpiresAt: challenge.ExpiresAt}, nil
}
