package usecase

import (
	"context"
	"time"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetProfile(ctx context.Context, accountID int64) (*entity.Profile, error)
	ListAddresses(ctx context.Context, accountID int64) ([]entity.Address, error)
	ListDirectory(ctx context.Context) ([]entity.DirectoryEntry, error)

	UpdateProfile(ctx context.Context, in entity.ProfileUpdate, now time.Time) error
	CreateAddress(ctx context.Context, in entity.Address) error
	UpdateAddress(ctx context.Context, in entity.Address) error
	DeleteAddress(ctx context.Context, accountID, addressID int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
	policy    *policy.Policy
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Policy     *policy.Policy
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		policy:    dep.Policy,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("customer.usecase").Start(ctx, name)
}

func (s *Usecase) authenticatedAccount(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil || clm.AccountID == 0 {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
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
