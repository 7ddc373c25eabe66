package inbound

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/auth/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

type uc interface {
	OtpRequest(ctx context.Context, in usecase.OtpRequestInput) (*usecase.OtpChallengeOutput, error)
	OtpResend(ctx context.Context, in usecase.OtpResendInput) (*usecase.OtpChallengeOutput, error)
	OtpVerify(ctx context.Context, in usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error)

	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	PasswordLogin(ctx context.Context, in usecase.PasswordLoginInput) (*usecase.PasswordLoginOutput, error)

	AdminPromote(ctx context.Context, in usecase.AdminPromoteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// OTP challenge lifecycle
	r.POST("/api/v1/auth/otp/request", end.OtpRequest)
	r.POST("/api/v1/auth/otp/resend", end.OtpResend)
	r.POST("/api/v1/auth/otp/verify", end.OtpVerify)

	// Password flows
	r.POST("/api/v1/auth/password/reset", end.PasswordReset)
	r.POST("/api/v1/auth/login", end.PasswordLogin)

	// Admin (need authenticated & authorization)
	r.POST("/api/v1/auth/admin/promote", end.AdminPromote)
}
