package inbound

import (
	"github.com/thearvan/arvan-backend/internal/customer/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for customer profile and address workflows.
type HTTPEndpoint struct {
	uc uc
}

// Profile returns the authenticated customer's profile.
// @Summary Get profile
// @Tags Customer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile result"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Phone:     resp.Phone,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// ProfileUpdate updates the authenticated customer's name or email.
// @Summary Update profile
// @Tags Customer
// @Security BearerAuth
// @Accept json
// @Param request body ProfileUpdateRequest true "Profile update payload"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers/profile [put]
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
}

// AddressList returns the authenticated customer's address book.
// @Summary List addresses
// @Tags Customer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=AddressesResponse} "Address list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers/addresses [get]
func (h *HTTPEndpoint) AddressList(r *router.Request) (any, error) {
	resp, err := h.uc.AddressList(r.Context())
	if err != nil {
		return nil, err
	}

	addresses := make([]AddressResponse, 0, len(resp.Addresses))
	for _, a := range resp.Addresses {
		addresses = append(addresses, addressResponse(a))
	}

	return AddressesResponse{Addresses: addresses}, nil
}

// AddressAdd creates a new address for the authenticated customer.
// @Summary Add address
// @Tags Customer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddressRequest true "Address payload"
// @Success 200 {object} router.successResponse{data=AddressResponse} "Created address"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers/addresses [post]
func (h *HTTPEndpoint) AddressAdd(r *router.Request) (any, error) {
	var req AddressRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AddressAdd(r.Context(), addressInput(req))
	if err != nil {
		return nil, err
	}

	return addressResponse(*resp), nil
}

// AddressUpdate replaces an address owned by the authenticated customer.
// @Summary Update address
// @Tags Customer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param request body AddressRequest true "Address payload"
// @Success 200 {object} router.successResponse{data=AddressResponse} "Updated address"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Address not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers/addresses/{id} [put]
func (h *HTTPEndpoint) AddressUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req AddressRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AddressUpdate(r.Context(), usecase.AddressUpdateInput{
		ID:           id,
		AddressInput: addressInput(req),
	})
	if err != nil {
		return nil, err
	}

	return addressResponse(*resp), nil
}

// AddressDelete removes an address owned by the authenticated customer.
// @Summary Delete address
// @Tags Customer
// @Security BearerAuth
// @Param id path int true "Address ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Address not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers/addresses/{id} [delete]
func (h *HTTPEndpoint) AddressDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.AddressDelete(r.Context(), usecase.AddressDeleteInput{ID: id})
}

// Directory lists all customers. Admin only.
// @Summary Customer directory
// @Tags Customer, Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=DirectoryResponse} "Customer directory"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/customers [get]
func (h *HTTPEndpoint) Directory(r *router.Request) (any, error) {
	resp, err := h.uc.Directory(r.Context())
	if err != nil {
		return nil, err
	}

	customers := make([]DirectoryEntryResponse, 0, len(resp.Customers))
	for _, c := range resp.Customers {
		customers = append(customers, DirectoryEntryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			AddressCount: c.AddressCount,
			JoinedAt:     c.JoinedAt,
		})
	}

	return DirectoryResponse{Customers: customers}, nil
}

func addressInput(req AddressRequest) usecase.AddressInput {
	return usecase.AddressInput{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
		Country: req.Country,
		Phone:   req.Phone,
	}
}

func addressResponse(a usecase.AddressOutput) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Country:   a.Country,
		Phone:     a.Phone,
		UpdatedAt: a.UpdatedAt,
	}
}
