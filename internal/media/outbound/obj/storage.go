package obj

import (
	"context"
	"io"
	"time"

	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Storage struct {
	client storage.Storage
	ins    instrument.Instrumentation
}

func NewStorage(client storage.Storage, ins instrument.Instrumentation) *Storage {
	return &Storage{client: client, ins: ins}
}

func (s *Storage) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("media.outbound.obj").Start(ctx, name)
}

func (s *Storage) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *Storage) Put(ctx context.Context, bucket, key string, r io.Reader, contentType string) (err error) {
	ctx, span := s.startSpan(ctx, "Put")
	defer func() { s.endSpan(span, err) }()

	_, err = s.client.PutObject(ctx, bucket, key, r, storage.PutOptions{ContentType: contentType})
	return err
}

func (s *Storage) Delete(ctx context.Context, bucket, key string) (err error) {
	ctx, span := s.startSpan(ctx, "Delete")
	defer func() { s.endSpan(span, err) }()

	return s.client.DeleteObject(ctx, bucket, key)
}

func (s *Storage) PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (url string, err error) {
	ctx, span := s.startSpan(ctx, "PresignGet")
	defer func() { s.endSpan(span, err) }()

	return s.client.PresignGet(ctx, bucket, key, expiry)
}

func (s *Storage) Stat(ctx context.Context, bucket, key string) (err error) {
	ctx, span := s.startSpan(ctx, "Stat")
	defer func() { s.endSpan(span, err) }()

	_, err = s.client.StatObject(ctx, bucket, key)
	return err
}
