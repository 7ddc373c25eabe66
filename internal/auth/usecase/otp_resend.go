package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type OtpResendInput struct {
	ChallengeToken string `validate:"required"`
}

// OtpResend re-issues a challenge, deriving phone and purpose from the
// previously issued token instead of taking them as direct input.
func (s *Usecase) OtpResend(ctx context.Context, in OtpResendInput) (*OtpChallengeOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpResend")
	defer span.End()

	in.ChallengeToken = strings.TrimSpace(in.ChallengeToken)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	claims, err := s.jwt.Verify(in.ChallengeToken)
	if err != nil {
		slog.WarnContext(ctx, "failed to verify challenge token", "error", err)
		return nil, goerror.NewBusiness("Invalid or expired challenge token", goerror.CodeUnauthorized)
	}

	purpose := entity.ParsePurpose(claims.Purpose)
	if claims.Phone == "" || !purpose.Valid() {
		return nil, goerror.NewBusiness("Invalid or expired challenge token", goerror.CodeUnauthorized)
	}

	return s.issueChallenge(ctx, claims.Phone, purpose)
}
