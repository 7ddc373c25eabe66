package notification

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thearvan/arvan-backend/internal/notification/inbound"
	"github.com/thearvan/arvan-backend/internal/notification/outbound/db"
	"github.com/thearvan/arvan-backend/internal/notification/outbound/email"
	"github.com/thearvan/arvan-backend/internal/notification/outbound/wa"
	"github.com/thearvan/arvan-backend/internal/notification/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goroutine"
	"github.com/thearvan/arvan-backend/internal/pkg/idempotency"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/mail"
	"github.com/thearvan/arvan-backend/internal/pkg/messaging"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/pkg/whatsapp"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

type Dependency struct {
	Ctx         context.Context
	DBConn      *pgxpool.Pool
	Messaging   messaging.Messaging
	Config      config.Config
	Instrument  instrument.Instrumentation
	UID         uid.NumberID
	UUID        uid.StringID
	Clock       clock.Clocker
	Goroutine   *goroutine.Manager
	Validator   validator.Validator
	Router      *router.Router
	Mail        mail.Mail
	WhatsApp    whatsapp.Sender
	Idempotency idempotency.Idempotency
	Policy      *policy.Policy
}

func New(dep Dependency) error {
	dbNotif := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)
	repoWA := wa.New(dep.WhatsApp, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:       dbNotif,
		RepoMail:     repoMail,
		RepoWhatsApp: repoWA,
		Config:       dep.Config,
		UID:          dep.UID,
		Clock:        dep.Clock,
		Validator:    dep.Validator,
		Idempotency:  dep.Idempotency,
		Policy:       dep.Policy,
		Instrument:   dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
