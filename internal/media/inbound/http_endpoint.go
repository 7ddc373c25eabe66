package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/thearvan/arvan-backend/internal/media/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for object storage workflows.
type HTTPEndpoint struct {
	uc uc
}

// Upload stores a multipart file and returns its key plus a presigned URL. Admin only.
// @Summary Upload media
// @Tags Media, Management
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Success 200 {object} router.successResponse{data=UploadResponse} "Upload result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/media [post]
func (h *HTTPEndpoint) Upload(r *router.Request) (any, error) {
	ctx := r.Context()

	file, filename, err := r.StreamSingleFileWithName("file")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	resp, err := h.uc.Upload(ctx, usecase.UploadInput{
		Filename:    filename,
		ContentType: http.DetectContentType(head[:n]),
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
	})
	if err != nil {
		return nil, err
	}

	return UploadResponse{Key: resp.Key, URL: resp.URL}, nil
}

// Presign returns a short-lived download URL for an object. Admin only.
// @Summary Presign media URL
// @Tags Media, Management
// @Security BearerAuth
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} router.successResponse{data=PresignResponse} "Presigned URL"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Object not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/media/presign [get]
func (h *HTTPEndpoint) Presign(r *router.Request) (any, error) {
	resp, err := h.uc.Presign(r.Context(), usecase.PresignInput{Key: r.GetQuery("key")})
	if err != nil {
		return nil, err
	}

	return PresignResponse{URL: resp.URL}, nil
}

// Delete removes an object. Admin only.
// @Summary Delete media
// @Tags Media, Management
// @Security BearerAuth
// @Param key query string true "Object key"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/media [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	return nil, h.uc.Delete(r.Context(), usecase.DeleteInput{Key: r.GetQuery("key")})
}
