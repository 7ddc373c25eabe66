package usecase

import (
	"context"
	"time"

	"github.com/thearvan/arvan-backend/internal/notification/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/idempotency"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/mail"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateEmailLog(ctx context.Context, in entity.EmailLog) error
	ListEmailLogs(ctx context.Context, limit, offset int32) ([]entity.EmailLog, error)
	UpdateEmailLogStatus(ctx context.Context, id int64, status entity.EmailStatus, now time.Time) error
	DeleteEmailLog(ctx context.Context, id int64) error
}

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type repoWhatsApp interface {
	Send(ctx context.Context, phone, body string) error
}

type Usecase struct {
	repoDB       repoDB
	repoMail     repoMail
	repoWhatsApp repoWhatsApp
	cfg          config.Config
	uid          uid.NumberID
	clock        clock.Clocker
	validator    validator.Validator
	idemp        idempotency.Idempotency
	policy       *policy.Policy
	ins          instrument.Instrumentation
}

type Dependency struct {
	RepoDB       repoDB
	RepoMail     repoMail
	RepoWhatsApp repoWhatsApp
	Config       config.Config
	UID          uid.NumberID
	Clock        clock.Clocker
	Validator    validator.Validator
	Idempotency  idempotency.Idempotency
	Policy       *policy.Policy
	Instrument   instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:       dep.RepoDB,
		repoMail:     dep.RepoMail,
		repoWhatsApp: dep.RepoWhatsApp,
		cfg:          dep.Config,
		uid:          dep.UID,
		clock:        dep.Clock,
		validator:    dep.Validator,
		idemp:        dep.Idempotency,
		policy:       dep.Policy,
		ins:          dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) authenticatedAdmin(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if !s.policy.Authorize(clm.Phone, clm.Role) {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}
