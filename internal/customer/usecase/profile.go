package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type ProfileOutput struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm, err := s.authenticatedAccount(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.repoDB.GetProfile(ctx, clm.AccountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get profile", "account_id", clm.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		ID:        profile.ID,
		Name:      profile.Name,
		Phone:     profile.Phone,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt,
	}, nil
}

type ProfileUpdateInput struct {
	Name  string `validate:"omitempty,min=2,max=100,alphaspace"`
	Email string `validate:"omitempty,email"`
}

func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	clm, err := s.authenticatedAccount(ctx)
	if err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.Name == "" && in.Email == "" {
		return goerror.NewInvalidInput(nil, "name", "at least one of name or email is required")
	}

	if err := s.repoDB.UpdateProfile(ctx, entity.ProfileUpdate{
		AccountID: clm.AccountID,
		Name:      in.Name,
		Email:     in.Email,
	}, s.clock.Now()); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update profile", "account_id", clm.AccountID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
