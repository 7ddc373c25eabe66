package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thearvan/arvan-backend/internal/notification/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/idempotency"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/mail"
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

type fakeWhatsApp struct {
	sent []struct{ phone, body string }
	err  error
}

func (w *fakeWhatsApp) Send(_ context.Context, phone, body string) error {
	if w.err != nil {
		return w.err
	}
	w.sent = append(w.sent, struct{ phone, body string }{phone, body})
	return nil
}

type fakeMail struct {
	sent []mail.Message
	err  error
}

func (m *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// fakeIdempotency replays the completed-state behavior of the Redis tracker:
// the first Exec for a key runs fn, later ones fail with ErrAlreadyCompleted.
type fakeIdempotency struct {
	done map[string]struct{}
}

func (f *fakeIdempotency) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	if _, ok := f.done[key]; ok {
		return idempotency.StateCompleted, nil
	}
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	if f.done == nil {
		f.done = map[string]struct{}{}
	}
	f.done[key] = struct{}{}
	return nil
}

func (f *fakeIdempotency) MarkFailed(_ context.Context, _ string, _ time.Duration) error {
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.done == nil {
		f.done = map[string]struct{}{}
	}
	if _, ok := f.done[key]; ok {
		return idempotency.ErrAlreadyCompleted
	}
	if err := fn(ctx); err != nil {
		return err
	}
	f.done[key] = struct{}{}
	return nil
}

type fakeDB struct {
	logs map[int64]entity.EmailLog
}

func newFakeDB() *fakeDB { return &fakeDB{logs: map[int64]entity.EmailLog{}} }

func (f *fakeDB) CreateEmailLog(_ context.Context, in entity.EmailLog) error {
	f.logs[in.ID] = in
	return nil
}

func (f *fakeDB) ListEmailLogs(_ context.Context, limit, offset int32) ([]entity.EmailLog, error) {
	out := make([]entity.EmailLog, 0, len(f.logs))
	for _, l := range f.logs {
		out = append(out, l)
	}
	if int(offset) >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeDB) UpdateEmailLogStatus(_ context.Context, id int64, status entity.EmailStatus, now time.Time) error {
	l, ok := f.logs[id]
	if !ok {
		return goerror.ErrNotFound
	}
	l.Status = status
	l.UpdatedAt = now
	f.logs[id] = l
	return nil
}

func (f *fakeDB) DeleteEmailLog(_ context.Context, id int64) error {
	if _, ok := f.logs[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.logs, id)
	return nil
}

type fixture struct {
	uc    *Usecase
	db    *fakeDB
	wa    *fakeWhatsApp
	mail  *fakeMail
	idemp *fakeIdempotency
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: The Arvan\n"))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	db := newFakeDB()
	wa := &fakeWhatsApp{}
	ml := &fakeMail{}
	idemp := &fakeIdempotency{}

	uc := New(Dependency{
		RepoDB:       db,
		RepoMail:     ml,
		RepoWhatsApp: wa,
		Config:       cfg,
		UID:          &fakeNumberID{},
		Clock:        &fakeClock{now: time.Now()},
		Validator:    v10,
		Idempotency:  idemp,
		Policy:       policy.New([]string{testAdminPhone}, "user"),
		Instrument:   instrument.NewNoop(),
	})

	return &fixture{uc: uc, db: db, wa: wa, mail: ml, idemp: idemp}
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
