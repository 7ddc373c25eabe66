package inbound

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/notification/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

type uc interface {
	ConsumeOtpIssued(ctx context.Context, in usecase.ConsumeOtpIssuedInput) error

	EmailSend(ctx context.Context, in usecase.EmailSendInput) (*usecase.EmailSendOutput, error)
	EmailList(ctx context.Context, in usecase.EmailListInput) (*usecase.EmailListOutput, error)
	EmailDelete(ctx context.Context, in usecase.EmailDeleteInput) error
	EmailUpdateStatus(ctx context.Context, in usecase.EmailUpdateStatusInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Transactional email log management (need authenticated & authorization)
	r.POST("/api/v1/notifications/email", end.EmailSend)
	r.GET("/api/v1/notifications/email", end.EmailList)
	r.DELETE("/api/v1/notifications/email/:id", end.EmailDelete)
	r.PATCH("/api/v1/notifications/email/:id/status", end.EmailUpdateStatus)
}
