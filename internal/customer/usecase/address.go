package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type AddressInput struct {
	Street  string `validate:"required,min=3,max=200"`
	City    string `validate:"required,min=2,max=100"`
	State   string `validate:"required,min=2,max=100"`
	Pincode string `validate:"required,min=4,max=10"`
	Country string `validate:"required,min=2,max=100"`
	Phone   string `validate:"required,e164"`
}

func (in *AddressInput) normalize() {
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Pincode = strings.TrimSpace(in.Pincode)
	in.Country = strings.TrimSpace(in.Country)
	in.Phone = strings.TrimSpace(in.Phone)
}

type AddressOutput struct {
	ID        int64
	Street    string
	City      string
	State     string
	Pincode   string
	Country   string
	Phone     string
	UpdatedAt time.Time
}

func (s *Usecase) AddressAdd(ctx context.Context, in AddressInput) (*AddressOutput, error) {
	ctx, span := s.startSpan(ctx, "AddressAdd")
	defer span.End()

	clm, err := s.authenticatedAccount(ctx)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()
	address := entity.Address{
		ID:        s.uid.Generate(),
		AccountID: clm.AccountID,
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		Pincode:   in.Pincode,
		Country:   in.Country,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repoDB.CreateAddress(ctx, address); err != nil {
		slog.ErrorContext(ctx, "failed to repo create address", "account_id", clm.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return addressOutput(address), nil
}

type AddressUpdateInput struct {
	ID int64 `validate:"required,gt=0"`
	AddressInput
}

func (s *Usecase) AddressUpdate(ctx context.Context, in AddressUpdateInput) (*AddressOutput, error) {
	ctx, span := s.startSpan(ctx, "AddressUpdate")
	defer span.End()

	clm, err := s.authenticatedAccount(ctx)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	address := entity.Address{
		ID:        in.ID,
		AccountID: clm.AccountID,
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		Pincode:   in.Pincode,
		Country:   in.Country,
		Phone:     in.Phone,
		UpdatedAt: s.clock.Now(),
	}

	if err := s.repoDB.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Address not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update address", "account_id", clm.AccountID, "address_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return addressOutput(address), nil
}

type AddressDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) AddressDelete(ctx context.Context, in AddressDeleteInput) error {
	ctx, span := s.startSpan(ctx, "AddressDelete")
	defer span.End()

	clm, err := s.authenticatedAccount(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteAddress(ctx, clm.AccountID, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Address not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete address", "account_id", clm.AccountID, "address_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type AddressListOutput struct {
	Addresses []AddressOutput
}

func (s *Usecase) AddressList(ctx context.Context) (*AddressListOutput, error) {
	ctx, span := s.startSpan(ctx, "AddressList")
	defer span.End()

	clm, err := s.authenticatedAccount(ctx)
	if err != nil {
		return nil, err
	}

	addresses, err := s.repoDB.ListAddresses(ctx, clm.AccountID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list addresses", "account_id", clm.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &AddressListOutput{Addresses: make([]AddressOutput, 0, len(addresses))}
	for _, a := range addresses {
		out.Addresses = append(out.Addresses, *addressOutput(a))
	}

	return out, nil
}

func addressOutput(a entity.Address) *AddressOutput {
	return &AddressOutput{
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
