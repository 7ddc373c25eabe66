package usecase

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type UploadInput struct {
	Filename    string `validate:"required,max=255"`
	ContentType string
	File        io.Reader
}

type UploadOutput struct {
	Key string
	URL string
}

// Upload stores an object under a generated key and returns a presigned
// download URL. Admin only.
func (s *Usecase) Upload(ctx context.Context, in UploadInput) (*UploadOutput, error) {
	ctx, span := s.startSpan(ctx, "Upload")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return nil, err
	}

	in.Filename = strings.TrimSpace(in.Filename)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	key := "media/" + s.oid.Generate() + strings.ToLower(path.Ext(in.Filename))
	if err := s.repoStorage.Put(ctx, s.bucket(), key, in.File, in.ContentType); err != nil {
		slog.ErrorContext(ctx, "failed to put object", "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	url, err := s.repoStorage.PresignGet(ctx, s.bucket(), key, s.presignExpiry())
	if err != nil {
		slog.ErrorContext(ctx, "failed to presign object", "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UploadOutput{Key: key, URL: url}, nil
}

type PresignInput struct {
	Key string `validate:"required,max=512"`
}

type PresignOutput struct {
	URL string
}

func (s *Usecase) Presign(ctx context.Context, in PresignInput) (*PresignOutput, error) {
	ctx, span := s.startSpan(ctx, "Presign")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.repoStorage.Stat(ctx, s.bucket(), in.Key); err != nil {
		return nil, goerror.NewBusiness("Object not found", goerror.CodeNotFound)
	}

	url, err := s.repoStorage.PresignGet(ctx, s.bucket(), in.Key, s.presignExpiry())
	if err != nil {
		slog.ErrorContext(ctx, "failed to presign object", "key", in.Key, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PresignOutput{URL: url}, nil
}

type DeleteInput struct {
	Key string `validate:"required,max=512"`
}

func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoStorage.Delete(ctx, s.bucket(), in.Key); err != nil {
		slog.ErrorContext(ctx, "failed to delete object", "key", in.Key, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
