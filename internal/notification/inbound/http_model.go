package inbound

import (
	"time"

	"github.com/thearvan/arvan-backend/internal/pkg/valueobject"
)

type EmailSendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type EmailSendResponse struct {
	ID     int64  `json:"id,string"`
	Status string `json:"status"`
}

type EmailLogResponse struct {
	ID        int64               `json:"id,string"`
	To        string              `json:"to"`
	Subject   string              `json:"subject"`
	Status    string              `json:"status"`
	Metadata  valueobject.JSONMap `json:"metadata"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type EmailListResponse struct {
	Emails []EmailLogResponse `json:"emails"`
}

type EmailUpdateStatusRequest struct {
	Status string `json:"status"`
}
