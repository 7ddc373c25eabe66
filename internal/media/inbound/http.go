package inbound

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/media/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

type uc interface {
	Upload(ctx context.Context, in usecase.UploadInput) (*usecase.UploadOutput, error)
	Presign(ctx context.Context, in usecase.PresignInput) (*usecase.PresignOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Object storage (need authenticated & authorization)
	r.POST("/api/v1/media", end.Upload)
	r.GET("/api/v1/media/presign", end.Presign)
	r.DELETE("/api/v1/media", end.Delete)
}
