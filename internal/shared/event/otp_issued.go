package event

const OtpIssuedDestination string = "otp_issued"
const OtpIssuedDestinationConsumerNotification string = "otp_issued_notification"

type OtpIssuedMessage struct {
	Phone     string `json:"phone"`
	Code      string `json:"code"`
	Purpose   string `json:"purpose"`
	TokenHash string `json:"token_hash"`
}
