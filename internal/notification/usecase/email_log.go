package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thearvan/arvan-backend/internal/notification/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/valueobject"
)

type EmailListInput struct {
	Size int32
	Page int32
}

type EmailLogOutput struct {
	ID        int64
	To        string
	Subject   string
	Status    string
	Metadata  valueobject.JSONMap
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmailListOutput struct {
	Emails []EmailLogOutput
}

func (s *Usecase) EmailList(ctx context.Context, in EmailListInput) (*EmailListOutput, error) {
	ctx, span := s.startSpan(ctx, "EmailList")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 20
	}
	if in.Page < 1 {
		in.Page = 1
	}

	logs, err := s.repoDB.ListEmailLogs(ctx, in.Size, (in.Page-1)*in.Size)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list email logs", "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &EmailListOutput{Emails: make([]EmailLogOutput, 0, len(logs))}
	for _, l := range logs {
		out.Emails = append(out.Emails, EmailLogOutput{
			ID:        l.ID,
			To:        l.To,
			Subject:   l.Subject,
			Status:    l.Status.String(),
			Metadata:  l.Metadata,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
	}

	return out, nil
}

type EmailDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) EmailDelete(ctx context.Context, in EmailDeleteInput) error {
	ctx, span := s.startSpan(ctx, "EmailDelete")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteEmailLog(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Email log not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete email log", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type EmailUpdateStatusInput struct {
	ID     int64  `validate:"required,gt=0"`
	Status string `validate:"required"`
}

func (s *Usecase) EmailUpdateStatus(ctx context.Context, in EmailUpdateStatusInput) error {
	ctx, span := s.startSpan(ctx, "EmailUpdateStatus")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	status := entity.ParseEmailStatus(in.Status)
	if !status.Valid() {
		return goerror.NewInvalidInput(nil, "status", "must be sent or failed")
	}

	if err := s.repoDB.UpdateEmailLogStatus(ctx, in.ID, status, s.clock.Now()); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Email log not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update email log status", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
