package entity

import "time"

// Account is a storefront user identified by phone. Created lazily on the
// first successful OTP exchange; PasswordHash stays empty for OTP-only
// accounts.
type Account struct {
	ID              int64
	Phone           string
	Name            string
	Email           string
	PasswordHash    string
	Role            Role
	PhoneVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OtpChallenge is one outstanding verification attempt. At most one row
// exists per phone; a newer request supersedes (deletes) the prior one.
type OtpChallenge struct {
	Phone     string
	Code      string
	TokenHash string
	Purpose   Purpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UpsertVerifiedAccount creates the account when absent or marks the existing
// one verified. ID is only used on insert.
type UpsertVerifiedAccount struct {
	ID         int64
	Phone      string
	VerifiedAt time.Time
}
