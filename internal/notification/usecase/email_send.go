package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thearvan/arvan-backend/internal/notification/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/mail"
	"github.com/thearvan/arvan-backend/internal/pkg/valueobject"
)

type EmailSendInput struct {
	To      string `validate:"required,email"`
	Subject string `validate:"required,min=1,max=200"`
	HTML    string `validate:"required"`
}

type EmailSendOutput struct {
	ID     int64
	Status string
}

// EmailSend dispatches a transactional email and records the attempt. The log
// row is written whether the send succeeded or not.
func (s *Usecase) EmailSend(ctx context.Context, in EmailSendInput) (*EmailSendOutput, error) {
	ctx, span := s.startSpan(ctx, "EmailSend")
	defer span.End()

	clm, err := s.authenticatedAdmin(ctx)
	if err != nil {
		return nil, err
	}

	in.To = strings.TrimSpace(strings.ToLower(in.To))
	in.Subject = strings.TrimSpace(in.Subject)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	status := entity.EmailStatusSent
	metadata := valueobject.JSONMap{"sent_by": clm.Phone}

	sendErr := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.To},
		Subject:  in.Subject,
		HTMLBody: in.HTML,
	})
	if sendErr != nil {
		slog.ErrorContext(ctx, "failed to send transactional email", "to", in.To, "error", sendErr)
		status = entity.EmailStatusFailed
		metadata.Set("error", sendErr.Error())
	}

	now := s.clock.Now()
	logRow := entity.EmailLog{
		ID:        s.uid.Generate(),
		To:        in.To,
		Subject:   in.Subject,
		Status:    status,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repoDB.CreateEmailLog(ctx, logRow); err != nil {
		slog.ErrorContext(ctx, "failed to repo create email log", "to", in.To, "error", err)
		return nil, goerror.NewServer(err)
	}

	if sendErr != nil {
		return nil, goerror.NewServer(sendErr)
	}

	return &EmailSendOutput{ID: logRow.ID, Status: status.String()}, nil
}
