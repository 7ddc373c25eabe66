package entity

// Purpose is the intended downstream effect of a successful OTP exchange.
type Purpose string

const (
	PurposeUnknown       Purpose = ""
	PurposeLogin         Purpose = "login"
	PurposeSignupVerify  Purpose = "signup-verify"
	PurposePasswordReset Purpose = "password-reset"
)

func ParsePurpose(str string) Purpose {
	switch str {
	case "login":
		return PurposeLogin
	case "signup-verify":
		return PurposeSignupVerify
	case "password-reset":
		return PurposePasswordReset
	default:
		return PurposeUnknown
	}
}

func (p Purpose) String() string {
	return string(p)
}

func (p Purpose) Valid() bool {
	switch p {
	case PurposeLogin, PurposeSignupVerify, PurposePasswordReset:
		return true
	default:
		return false
	}
}

// Role is the account authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(str string) Role {
	if str == "admin" {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) String() string {
	return string(r)
}
