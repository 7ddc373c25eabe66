package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

const testAdminPhone = "+6281111111111"

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeNumberID struct{ last int64 }

func (u *fakeNumberID) Generate() int64 {
	u.last++
	return u.last
}

// fakeDB scopes address mutations by account id the way the SQL layer does.
type fakeDB struct {
	profiles  map[int64]*entity.Profile
	addresses map[int64]entity.Address
	directory []entity.DirectoryEntry
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		profiles:  map[int64]*entity.Profile{},
		addresses: map[int64]entity.Address{},
	}
}

func (f *fakeDB) GetProfile(_ context.Context, accountID int64) (*entity.Profile, error) {
	p, ok := f.profiles[accountID]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return p, nil
}

func (f *fakeDB) ListAddresses(_ context.Context, accountID int64) ([]entity.Address, error) {
	var out []entity.Address
	for _, a := range f.addresses {
		if a.AccountID == accountID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeDB) ListDirectory(_ context.Context) ([]entity.DirectoryEntry, error) {
	return f.directory, nil
}

func (f *fakeDB) UpdateProfile(_ context.Context, in entity.ProfileUpdate, _ time.Time) error {
	p, ok := f.profiles[in.AccountID]
	if !ok {
		return goerror.ErrNotFound
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Email != "" {
		p.Email = in.Email
	}
	return nil
}

func (f *fakeDB) CreateAddress(_ context.Context, in entity.Address) error {
	f.addresses[in.ID] = in
	return nil
}

func (f *fakeDB) UpdateAddress(_ context.Context, in entity.Address) error {
	existing, ok := f.addresses[in.ID]
	if !ok || existing.AccountID != in.AccountID {
		return goerror.ErrNotFound
	}
	in.CreatedAt = existing.CreatedAt
	f.addresses[in.ID] = in
	return nil
}

func (f *fakeDB) DeleteAddress(_ context.Context, accountID, addressID int64) error {
	existing, ok := f.addresses[addressID]
	if !ok || existing.AccountID != accountID {
		return goerror.ErrNotFound
	}
	delete(f.addresses, addressID)
	return nil
}

type fixture struct {
	uc *Usecase
	db *fakeDB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	db := newFakeDB()
	uc := New(Dependency{
		RepoDB:     db,
		Validator:  v10,
		UID:        &fakeNumberID{},
		Clock:      &fakeClock{now: time.Now()},
		Instrument: instrument.NewNoop(),
		Policy:     policy.New([]string{testAdminPhone}, "user"),
	})

	return &fixture{uc: uc, db: db}
}

func accountCtx(id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{AccountID: id, Phone: "+6289876543210", Role: "user"})
}

func adminCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{AccountID: 1, Phone: testAdminPhone, Role: "user"})
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
