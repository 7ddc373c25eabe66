package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type PasswordLoginInput struct {
	Phone    string `validate:"required,e164"`
	Password string `validate:"required"`
}

type PasswordLoginOutput struct {
	SessionToken string
}

func (s *Usecase) PasswordLogin(ctx context.Context, in PasswordLoginInput) (*PasswordLoginOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordLogin")
	defer span.End()

	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByPhone(ctx, in.Phone)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Phone or password is incorrect", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone", in.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Accounts created through the OTP flow have no password until a reset.
	if acc.PasswordHash == "" || !s.bcrypt.Verify(acc.PasswordHash, in.Password) {
		return nil, goerror.NewBusiness("Phone or password is incorrect", goerror.CodeUnauthorized)
	}

	sessionToken, err := s.sessionToken(acc)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign session token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PasswordLoginOutput{SessionToken: sessionToken}, nil
}
