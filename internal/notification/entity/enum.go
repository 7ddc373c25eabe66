package entity

// EmailStatus tracks the delivery outcome recorded on an email log row.
type EmailStatus string

const (
	EmailStatusUnknown EmailStatus = ""
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

func ParseEmailStatus(s string) EmailStatus {
	switch s {
	case "sent":
		return EmailStatusSent
	case "failed":
		return EmailStatusFailed
	default:
		return EmailStatusUnknown
	}
}

func (s EmailStatus) String() string {
	return string(s)
}

func (s EmailStatus) Valid() bool {
	return s == EmailStatusSent || s == EmailStatusFailed
}
