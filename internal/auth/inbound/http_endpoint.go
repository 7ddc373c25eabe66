package inbound

import (
	"github.com/thearvan/arvan-backend/internal/auth/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// OtpRequest issues a one-time code challenge for a phone number.
// @Summary Request OTP
// @Description Issues a one-time code for the phone, delivered out-of-band, and returns a challenge token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OtpRequestRequest true "OTP request payload"
// @Success 200 {object} router.successResponse{data=OtpChallengeResponse} "Challenge issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Too many requests"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/request [post]
func (h *HTTPEndpoint) OtpRequest(r *router.Request) (any, error) {
	var req OtpRequestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpRequest(r.Context(), usecase.OtpRequestInput{
		Phone:   req.Phone,
		Purpose: req.Purpose,
	})
	if err != nil {
		return nil, err
	}

	return OtpChallengeResponse{
		ChallengeToken: resp.ChallengeToken,
		ExpiresAt:      resp.ExpiresAt,
	}, nil
}

// OtpResend re-issues a challenge using a previously issued token.
// @Summary Resend OTP
// @Description Issues a fresh one-time code, deriving phone and purpose from the supplied challenge token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OtpResendRequest true "OTP resend payload"
// @Success 200 {object} router.successResponse{data=OtpChallengeResponse} "Challenge re-issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired challenge token"
// @Failure 429 {object} router.errorResponse "Too many requests"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/resend [post]
func (h *HTTPEndpoint) OtpResend(r *router.Request) (any, error) {
	var req OtpResendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpResend(r.Context(), usecase.OtpResendInput{ChallengeToken: req.ChallengeToken})
	if err != nil {
		return nil, err
	}

	return OtpChallengeResponse{
		ChallengeToken: resp.ChallengeToken,
		ExpiresAt:      resp.ExpiresAt,
	}, nil
}

// OtpVerify exchanges a code and challenge token for a session token.
// @Summary Verify OTP
// @Description Verifies the code against its challenge and returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OtpVerifyRequest true "OTP verify payload"
// @Success 200 {object} router.successResponse{data=OtpVerifyResponse} "Session issued"
// @Failure 400 {object} router.errorResponse "Code does not match this challenge"
// @Failure 401 {object} router.errorResponse "Invalid or expired challenge token"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/verify [post]
func (h *HTTPEndpoint) OtpVerify(r *router.Request) (any, error) {
	var req OtpVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpVerify(r.Context(), usecase.OtpVerifyInput{
		Code:           req.Code,
		ChallengeToken: req.ChallengeToken,
	})
	if err != nil {
		return nil, err
	}

	return OtpVerifyResponse{
		SessionToken: resp.SessionToken,
		AccountID:    resp.Account.ID,
		Phone:        resp.Account.Phone,
		Role:         resp.Account.Role.String(),
	}, nil
}

// PasswordReset sets a new password using a password-reset token.
// @Summary Reset password
// @Description Sets a new password for the phone embedded in the reset token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset password payload"
// @Success 200 {object} router.successResponse{data=PasswordResetResponse} "Password updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid, expired or superseded reset token"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		NewPassword: req.NewPassword,
		ResetToken:  req.ResetToken,
	}); err != nil {
		return nil, err
	}

	return &PasswordResetResponse{}, nil
}

// PasswordLogin authenticates with phone and password.
// @Summary Login with password
// @Description Validates phone and password and returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body PasswordLoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=PasswordLoginResponse} "Session issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Phone or password is incorrect"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) PasswordLogin(r *router.Request) (any, error) {
	var req PasswordLoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordLogin(r.Context(), usecase.PasswordLoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return PasswordLoginResponse{SessionToken: resp.SessionToken}, nil
}

// AdminPromote grants the admin role to an account.
// @Summary Promote account to admin
// @Description Grants the admin role to the target account.
// @Tags Auth, Management
// @Security BearerAuth
// @Accept json
// @Param request body AdminPromoteRequest true "Promotion payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/admin/promote [post]
func (h *HTTPEndpoint) AdminPromote(r *router.Request) (any, error) {
	var req AdminPromoteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.AdminPromote(r.Context(), usecase.AdminPromoteInput{AccountID: req.AccountID})
}
