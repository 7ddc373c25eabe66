package inbound

import "time"

type OtpRequestRequest struct {
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
}

type OtpResendRequest struct {
	ChallengeToken string `json:"challenge_token"`
}

// OtpChallengeResponse never carries the code itself; that is delivered
// out-of-band only.
type OtpChallengeResponse struct {
	ChallengeToken string    `json:"challenge_token"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (OtpChallengeResponse) Message() string {
	return "A one-time code has been sent to your phone."
}

type OtpVerifyRequest struct {
	Code           string `json:"code"`
	ChallengeToken string `json:"challenge_token"`
}

type OtpVerifyResponse struct {
	SessionToken string `json:"session_token"`
	AccountID    int64  `json:"account_id,string"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
}

type PasswordResetRequest struct {
	NewPassword string `json:"new_password"`
	ResetToken  string `json:"reset_token"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password has been updated. You can sign in with your new password."
}

type PasswordLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type PasswordLoginResponse struct {
	SessionToken string `json:"session_token"`
}

type AdminPromoteRequest struct {
	AccountID int64 `json:"account_id,string"`
}
