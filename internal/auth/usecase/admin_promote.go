package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type AdminPromoteInput struct {
	AccountID int64 `validate:"required,gt=0"`
}

// AdminPromote grants the admin role to an account. The caller must already
// hold an admin identity: either an allow-listed phone or a non-default role.
func (s *Usecase) AdminPromote(ctx context.Context, in AdminPromoteInput) error {
	ctx, span := s.startSpan(ctx, "AdminPromote")
	defer span.End()

	clm, err := s.authenticatedAdmin(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateAccountRole(ctx, in.AccountID, entity.RoleAdmin, s.clock.Now()); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update account role", "account_id", in.AccountID, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "account promoted to admin", "account_id", in.AccountID, "promoted_by", clm.Phone)

	return nil
}
