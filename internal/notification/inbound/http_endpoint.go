package inbound

import (
	"github.com/thearvan/arvan-backend/internal/notification/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for transactional email management.
type HTTPEndpoint struct {
	uc uc
}

// EmailSend dispatches a transactional email. Admin only.
// @Summary Send email
// @Tags Notification, Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmailSendRequest true "Email payload"
// @Success 200 {object} router.successResponse{data=EmailSendResponse} "Send result"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notifications/email [post]
func (h *HTTPEndpoint) EmailSend(r *router.Request) (any, error) {
	var req EmailSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.EmailSend(r.Context(), usecase.EmailSendInput{
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		return nil, err
	}

	return EmailSendResponse{ID: resp.ID, Status: resp.Status}, nil
}

// EmailList returns the transactional email log. Admin only.
// @Summary List email logs
// @Tags Notification, Management
// @Security BearerAuth
// @Produce json
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=EmailListResponse} "Email log list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notifications/email [get]
func (h *HTTPEndpoint) EmailList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.EmailList(r.Context(), usecase.EmailListInput{Size: size, Page: page})
	if err != nil {
		return nil, err
	}

	emails := make([]EmailLogResponse, 0, len(resp.Emails))
	for _, e := range resp.Emails {
		emails = append(emails, EmailLogResponse{
			ID:        e.ID,
			To:        e.To,
			Subject:   e.Subject,
			Status:    e.Status,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return EmailListResponse{Emails: emails}, nil
}

// EmailDelete removes an email log row. Admin only.
// @Summary Delete email log
// @Tags Notification, Management
// @Security BearerAuth
// @Param id path int true "Email log ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Email log not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notifications/email/{id} [delete]
func (h *HTTPEndpoint) EmailDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.EmailDelete(r.Context(), usecase.EmailDeleteInput{ID: id})
}

// EmailUpdateStatus overrides the recorded status of an email log row. Admin only.
// @Summary Update email log status
// @Tags Notification, Management
// @Security BearerAuth
// @Accept json
// @Param id path int true "Email log ID"
// @Param request body EmailUpdateStatusRequest true "Status payload"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Email log not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notifications/email/{id}/status [patch]
func (h *HTTPEndpoint) EmailUpdateStatus(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req EmailUpdateStatusRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.EmailUpdateStatus(r.Context(), usecase.EmailUpdateStatusInput{
		ID:     id,
		Status: req.Status,
	})
}
