package entity

import (
	"time"

	"github.com/thearvan/arvan-backend/internal/pkg/valueobject"
)

// EmailLog records one transactional email send attempt.
type EmailLog struct {
	ID        int64
	To        string
	Subject   string
	Status    EmailStatus
	Metadata  valueobject.JSONMap
	CreatedAt time.Time
	UpdatedAt time.Time
}
