package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

const testAdminPhone = "+6281111111111"

type fakeStringID struct{ last int }

func (u *fakeStringID) Generate() string {
	u.last++
	return fmt.Sprintf("oid-%03d", u.last)
}

type storedObject struct {
	bucket      string
	contentType string
	data        []byte
}

type fakeStorage struct {
	objects map[string]storedObject
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string]storedObject{}} }

func (f *fakeStorage) Put(_ context.Context, bucket, key string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = storedObject{bucket: bucket, contentType: contentType, data: data}
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, _, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PresignGet(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	return "https://storage.test/" + bucket + "/" + key + "?signed=1", nil
}

func (f *fakeStorage) Stat(_ context.Context, _, key string) error {
	if _, ok := f.objects[key]; !ok {
		return errors.New("object missing")
	}
	return nil
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeStorage) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  media:\n    bucket: test-bucket\n    presign_ttl_minutes: 15\n"))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	stg := newFakeStorage()
	uc := New(Dependency{
		RepoStorage: stg,
		Config:      cfg,
		OID:         &fakeStringID{},
		Validator:   v10,
		Policy:      policy.New([]string{testAdminPhone}, "user"),
		Instrument:  instrument.NewNoop(),
	})

	return uc, stg
}

func adminCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{AccountID: 1, Phone: testAdminPhone, Role: "user"})
}

func wantGoError(t *testing.T, err error, status int) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror, got %v", err)
	}
	if gerr.StatusCode() != status {
		t.Fatalf("status code = %d, want %d (err: %v)", gerr.StatusCode(), status, err)
	}
}

func TestUploadStoresUnderGeneratedKey(t *testing.T) {
	uc, stg := newTestUsecase(t)

	out, err := uc.Upload(adminCtx(), UploadInput{
		Filename:    "Photo.JPG",
		ContentType: "image/jpeg",
		File:        strings.NewReader("jpeg-bytes"),
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if !strings.HasPrefix(out.Key, "media/") || !strings.HasSuffix(out.Key, ".jpg") {
		t.Fatalf("key = %q, want media/ prefix and lowercased extension", out.Key)
	}
	obj, ok := stg.objects[out.Key]
	if !ok {
		t.Fatal("object not stored")
	}
	if obj.bucket != "test-bucket" || obj.contentType != "image/jpeg" || string(obj.data) != "jpeg-bytes" {
		t.Fatalf("stored object = %+v", obj)
	}
	if !strings.Contains(out.URL, out.Key) {
		t.Fatalf("url = %q, want presigned for the key", out.URL)
	}
}

func TestUploadRequiresAdmin(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Upload(context.Background(), UploadInput{Filename: "a.png", File: strings.NewReader("x")})
	wantGoError(t, err, http.StatusUnauthorized)

	userCtx := jwt.SetAuth(context.Background(), jwt.Claims{AccountID: 2, Phone: "+6289999999999", Role: "user"})
	_, err = uc.Upload(userCtx, UploadInput{Filename: "a.png", File: strings.NewReader("x")})
	wantGoError(t, err, http.StatusForbidden)
}

func TestPresignUnknownObject(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Presign(adminCtx(), PresignInput{Key: "media/missing.png"})
	wantGoError(t, err, http.StatusNotFound)
}

func TestPresignExistingObject(t *testing.T) {
	uc, stg := newTestUsecase(t)
	stg.objects["media/abc.png"] = storedObject{bucket: "test-bucket"}

	out, err := uc.Presign(adminCtx(), PresignInput{Key: "media/abc.png"})
	if err != nil {
		t.Fatalf("Presign() error = %v", err)
	}
	if !strings.Contains(out.URL, "media/abc.png") {
		t.Fatalf("url = %q", out.URL)
	}
}

func TestDeleteObject(t *testing.T) {
	uc, stg := newTestUsecase(t)
	stg.objects["media/abc.png"] = storedObject{bucket: "test-bucket"}

	if err := uc.Delete(adminCtx(), DeleteInput{Key: "media/abc.png"}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := stg.objects["media/abc.png"]; ok {
		t.Fatal("object should be gone")
	}
}
