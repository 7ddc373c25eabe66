package usecase

import (
	"context"
	"time"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/hash"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/otp"
	"github.com/thearvan/arvan-backend/internal/pkg/ratelimit"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
	"go.opentelemetry.io/otel/trace"
)

type OtpIssuedEvent struct {
	Phone     string
	Code      string
	Purpose   string
	TokenHash string
}

type repoMessaging interface {
	PublishOtpIssued(ctx context.Context, msg OtpIssuedEvent) error
}

type repoDB interface {
	GetAccountByID(ctx context.Context, id int64) (*entity.Account, error)
	GetAccountByPhone(ctx context.Context, phone string) (*entity.Account, error)
	GetChallengeByTriple(ctx context.Context, phone, code, tokenHash string) (*entity.OtpChallenge, error)
	GetChallengeByPhone(ctx context.Context, phone string) (*entity.OtpChallenge, error)

	CreateChallenge(ctx context.Context, in entity.OtpChallenge) error
	UpsertVerifiedAccount(ctx context.Context, in entity.UpsertVerifiedAccount) (*entity.Account, error)

	UpdateAccountPassword(ctx context.Context, phone, passwordHash string, now time.Time) error
	UpdateAccountRole(ctx context.Context, id int64, role entity.Role, now time.Time) error

	DeleteChallengeByPhone(ctx context.Context, phone string) error
	DeleteExpiredChallenges(ctx context.Context, before time.Time) (int64, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	hmac          hash.Hash
	otp           otp.OTP
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	limiter       ratelimit.Limiter
	policy        *policy.Policy
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	HMAC          hash.Hash
	OTP           otp.OTP
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Limiter       ratelimit.Limiter
	Policy        *policy.Policy
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		hmac:          dep.HMAC,
		otp:           dep.OTP,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		limiter:       dep.Limiter,
		policy:        dep.Policy,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

// challengeTTL is purpose-dependent: password resets get a longer window.
func (s *Usecase) challengeTTL(purpose entity.Purpose) time.Duration {
	if purpose == entity.PurposePasswordReset {
		return s.cfg.GetHour("modules.auth.reset_challenge_ttl_hours")
	}
	return s.cfg.GetMinute("modules.auth.challenge_ttl_minutes")
}

func (s *Usecase) sessionToken(acc *entity.Account) (string, error) {
	return s.jwt.Generate(jwt.Payload{
		AccountID: acc.ID,
		Phone:     acc.Phone,
		Role:      acc.Role.String(),
		Purpose:   entity.PurposeLogin.String(),
	}, s.cfg.GetMinute("modules.auth.session_ttl_minutes"))
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
