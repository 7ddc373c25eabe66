package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type PasswordResetInput struct {
	NewPassword string `validate:"required,password"`
	ResetToken  string `validate:"required"`
}

// PasswordReset sets a new password for the phone embedded in the reset
// token. The stored challenge must still reference this exact token, so a
// reset token that was superseded by a newer request is rejected even inside
// its own expiry window.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.ResetToken = strings.TrimSpace(in.ResetToken)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	claims, err := s.jwt.Verify(in.ResetToken)
	if err != nil {
		slog.WarnContext(ctx, "failed to verify reset token", "error", err)
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeUnauthorized)
	}

	if entity.ParsePurpose(claims.Purpose) != entity.PurposePasswordReset || claims.Phone == "" {
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeUnauthorized)
	}

	tokenHash, err := s.hmac.Hash(in.ResetToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash reset token", "error", err)
		return goerror.NewServer(err)
	}

	challenge, err := s.repoDB.GetChallengeByPhone(ctx, claims.Phone)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Reset token has been superseded", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get challenge", "phone", claims.Phone, "error", err)
		return goerror.NewServer(err)
	}

	if challenge.TokenHash != string(tokenHash) {
		return goerror.NewBusiness("Reset token has been superseded", goerror.CodeUnauthorized)
	}

	hashedPassword, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateAccountPassword(ctx, claims.Phone, string(hashedPassword), s.clock.Now()); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update account password", "phone", claims.Phone, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteChallengeByPhone(ctx, claims.Phone); err != nil {
		slog.ErrorContext(ctx, "failed to consume challenge", "phone", claims.Phone, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
