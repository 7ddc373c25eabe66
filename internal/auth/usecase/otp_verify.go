package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type OtpVerifyInput struct {
	Code           string `validate:"required,otpcode"`
	ChallengeToken string `validate:"required"`
}

type OtpVerifyOutput struct {
	SessionToken string
	Account      *entity.Account
}

// OtpVerify exchanges a delivered code plus its challenge token for a session
// token. The lookup matches phone, code, and token hash together so a code
// from one challenge cannot be replayed against another token for the same
// phone; the matched row is consumed exactly once.
func (s *Usecase) OtpVerify(ctx context.Context, in OtpVerifyInput) (*OtpVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpVerify")
	defer span.End()

	in.Code = strings.TrimSpace(in.Code)
	in.ChallengeToken = strings.TrimSpace(in.ChallengeToken)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	claims, err := s.jwt.Verify(in.ChallengeToken)
	if err != nil {
		slog.WarnContext(ctx, "failed to verify challenge token", "error", err)
		return nil, goerror.NewBusiness("Invalid or expired challenge token", goerror.CodeUnauthorized)
	}

	tokenHash, err := s.hmac.Hash(in.ChallengeToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash challenge token", "error", err)
		return nil, goerror.NewServer(err)
	}

	challenge, err := s.repoDB.GetChallengeByTriple(ctx, claims.Phone, in.Code, string(tokenHash))
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Code does not match this challenge", goerror.CodeInvalidCode)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get challenge", "phone", claims.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteChallengeByPhone(ctx, challenge.Phone); err != nil {
		slog.ErrorContext(ctx, "failed to consume challenge", "phone", challenge.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Both signup-verify and login resolve to the same upsert: create the
	// account on first exchange, mark it verified otherwise.
	acc, err := s.repoDB.UpsertVerifiedAccount(ctx, entity.UpsertVerifiedAccount{
		ID:         s.uid.Generate(),
		Phone:      challenge.Phone,
		VerifiedAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert verified account", "phone", challenge.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	sessionToken, err := s.sessionToken(acc)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign session token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OtpVerifyOutput{SessionToken: sessionToken, Account: acc}, nil
}
