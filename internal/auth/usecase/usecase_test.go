package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/hash"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/otp"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

const testAdminPhone = "+6281111111111"

const testConfigYAML = `
modules:
  auth:
    challenge_ttl_minutes: 15
    reset_challenge_ttl_hours: 1
    session_ttl_minutes: 60
`

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeNumberID struct{ last int64 }

func (u *fakeNumberID) Generate() int64 {
	u.last++
	return u.last
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

type fakeMessaging struct {
	published []OtpIssuedEvent
	err       error
}

func (m *fakeMessaging) PublishOtpIssued(_ context.Context, msg OtpIssuedEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

// fakeDB keeps accounts keyed by phone and at most one challenge per phone,
// mirroring the storage layer's uniqueness rule.
type fakeDB struct {
	accounts   map[string]*entity.Account
	challenges map[string]entity.OtpChallenge
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		accounts:   map[string]*entity.Account{},
		challenges: map[string]entity.OtpChallenge{},
	}
}

func (f *fakeDB) GetAccountByID(_ context.Context, id int64) (*entity.Account, error) {
	for _, acc := range f.accounts {
		if acc.ID == id {
			return acc, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetAccountByPhone(_ context.Context, phone string) (*entity.Account, error) {
	acc, ok := f.accounts[phone]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return acc, nil
}

func (f *fakeDB) GetChallengeByTriple(_ context.Context, phone, code, tokenHash string) (*entity.OtpChallenge, error) {
	ch, ok := f.challenges[phone]
	if !ok || ch.Code != code || ch.TokenHash != tokenHash {
		return nil, goerror.ErrNotFound
	}
	return &ch, nil
}

func (f *fakeDB) GetChallengeByPhone(_ context.Context, phone string) (*entity.OtpChallenge, error) {
	ch, ok := f.challenges[phone]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &ch, nil
}

func (f *fakeDB) CreateChallenge(_ context.Context, in entity.OtpChallenge) error {
	f.challenges[in.Phone] = in
	return nil
}

func (f *fakeDB) UpsertVerifiedAccount(_ context.Context, in entity.UpsertVerifiedAccount) (*entity.Account, error) {
	if acc, ok := f.accounts[in.Phone]; ok {
		verifiedAt := in.VerifiedAt
		acc.PhoneVerifiedAt = &verifiedAt
		acc.UpdatedAt = in.VerifiedAt
		return acc, nil
	}

	verifiedAt := in.VerifiedAt
	acc := &entity.Account{
		ID:              in.ID,
		Phone:           in.Phone,
		Role:            entity.RoleUser,
		PhoneVerifiedAt: &verifiedAt,
		CreatedAt:       in.VerifiedAt,
		UpdatedAt:       in.VerifiedAt,
	}
	f.accounts[in.Phone] = acc
	return acc, nil
}

func (f *fakeDB) UpdateAccountPassword(_ context.Context, phone, passwordHash string, now time.Time) error {
	acc, ok := f.accounts[phone]
	if !ok {
		return goerror.ErrNotFound
	}
	acc.PasswordHash = passwordHash
	acc.UpdatedAt = now
	return nil
}

func (f *fakeDB) UpdateAccountRole(_ context.Context, id int64, role entity.Role, now time.Time) error {
	for _, acc := range f.accounts {
		if acc.ID == id {
			acc.Role = role
			acc.UpdatedAt = now
			return nil
		}
	}
	return goerror.ErrNotFound
}

func (f *fakeDB) DeleteChallengeByPhone(_ context.Context, phone string) error {
	delete(f.challenges, phone)
	return nil
}

func (f *fakeDB) DeleteExpiredChallenges(_ context.Context, before time.Time) (int64, error) {
	var deleted int64
	for phone, ch := range f.challenges {
		if ch.ExpiresAt.Before(before) {
			delete(f.challenges, phone)
			deleted++
		}
	}
	return deleted, nil
}

type fixture struct {
	uc  *Usecase
	db  *fakeDB
	msg *fakeMessaging
	lim *fakeLimiter
	clk *fakeClock
	jwt jwt.JWT
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	clk := &fakeClock{now: time.Now()}
	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(testJWTSecret),
		Issuer:    "test",
		Audiences: []string{"test"},
		Clock:     clk,
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	db := newFakeDB()
	msg := &fakeMessaging{}
	lim := &fakeLimiter{allowed: true}

	uc := New(Dependency{
		RepoDB:        db,
		RepoMessaging: msg,
		Validator:     v10,
		Config:        cfg,
		Bcrypt:        hash.NewBcrypt(4, "test-pepper"),
		HMAC:          hash.NewHMACSHA256("test-hmac-secret"),
		OTP:           otp.NewNumeric(6),
		UID:           &fakeNumberID{},
		Clock:         clk,
		JWT:           tokener,
		Instrument:    instrument.NewNoop(),
		Limiter:       lim,
		Policy:        policy.New([]string{testAdminPhone}, "user"),
	})

	return &fixture{uc: uc, db: db, msg: msg, lim: lim, clk: clk, jwt: tokener}
}

func wantGoError(t *testing.T, err error, status int) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror, got %v", err)
	}
	if gerr.StatusCode() != status {
		t.Fatalf("status code = %d, want %d (err: %v)", gerr.StatusCode(), status, err)
	}
	return gerr
}
