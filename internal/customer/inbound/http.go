package inbound

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/customer/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

type uc interface {
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error

	AddressAdd(ctx context.Context, in usecase.AddressInput) (*usecase.AddressOutput, error)
	AddressUpdate(ctx context.Context, in usecase.AddressUpdateInput) (*usecase.AddressOutput, error)
	AddressDelete(ctx context.Context, in usecase.AddressDeleteInput) error
	AddressList(ctx context.Context) (*usecase.AddressListOutput, error)

	Directory(ctx context.Context) (*usecase.DirectoryOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Profile (need authenticated)
	r.GET("/api/v1/customers/profile", end.Profile)
	r.PUT("/api/v1/customers/profile", end.ProfileUpdate)

	// Address book (need authenticated)
	r.GET("/api/v1/customers/addresses", end.AddressList)
	r.POST("/api/v1/customers/addresses", end.AddressAdd)
	r.PUT("/api/v1/customers/addresses/:id", end.AddressUpdate)
	r.DELETE("/api/v1/customers/addresses/:id", end.AddressDelete)

	// Directory (need authenticated & authorization)
	r.GET("/api/v1/customers", end.Directory)
}
