package usecase

import (
	"context"
	"io"
	"time"

	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
	"go.opentelemetry.io/otel/trace"
)

type repoStorage interface {
	Put(ctx context.Context, bucket, key string, r io.Reader, contentType string) error
	Delete(ctx context.Context, bucket, key string) error
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
	Stat(ctx context.Context, bucket, key string) error
}

type Usecase struct {
	repoStorage repoStorage
	cfg         config.Config
	oid         uid.StringID
	validator   validator.Validator
	policy      *policy.Policy
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoStorage repoStorage
	Config      config.Config
	OID         uid.StringID
	Validator   validator.Validator
	Policy      *policy.Policy
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoStorage: dep.RepoStorage,
		cfg:         dep.Config,
		oid:         dep.OID,
		validator:   dep.Validator,
		policy:      dep.Policy,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("media.usecase").Start(ctx, name)
}

func (s *Usecase) bucket() string {
	return s.cfg.GetString("modules.media.bucket")
}

func (s *Usecase) presignExpiry() time.Duration {
	return s.cfg.GetMinute("modules.media.presign_ttl_minutes")
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
