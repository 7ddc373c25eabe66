package usecase

import (
	"net/http"
	"testing"
)

func validAddress() AddressInput {
	return AddressInput{
		Street:  "12 Jalan Merdeka",
		City:    "Jakarta",
		State:   "DKI Jakarta",
		Pincode: "10110",
		Country: "Indonesia",
		Phone:   "+6289876543210",
	}
}

func TestAddressAddAndList(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.uc.AddressAdd(accountCtx(7), validAddress())
	if err != nil {
		t.Fatalf("AddressAdd() error = %v", err)
	}
	if out.ID == 0 {
		t.Fatal("expected a generated address id")
	}

	list, err := fx.uc.AddressList(accountCtx(7))
	if err != nil {
		t.Fatalf("AddressList() error = %v", err)
	}
	if len(list.Addresses) != 1 || list.Addresses[0].Street != "12 Jalan Merdeka" {
		t.Fatalf("addresses = %+v", list.Addresses)
	}

	// Another account sees nothing.
	other, err := fx.uc.AddressList(accountCtx(8))
	if err != nil {
		t.Fatalf("AddressList() error = %v", err)
	}
	if len(other.Addresses) != 0 {
		t.Fatalf("addresses for other account = %+v", other.Addresses)
	}
}

func TestAddressAddValidation(t *testing.T) {
	fx := newFixture(t)

	in := validAddress()
	in.Phone = "081234"
	_, err := fx.uc.AddressAdd(accountCtx(7), in)
	wantGoError(t, err, http.StatusBadRequest)
}

func TestAddressUpdateScopedToOwner(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.AddressAdd(accountCtx(7), validAddress())
	if err != nil {
		t.Fatalf("AddressAdd() error = %v", err)
	}

	update := AddressUpdateInput{ID: created.ID, AddressInput: validAddress()}
	update.City = "Bandung"

	// A different account cannot touch it.
	_, err = fx.uc.AddressUpdate(accountCtx(8), update)
	wantGoError(t, err, http.StatusNotFound)

	out, err := fx.uc.AddressUpdate(accountCtx(7), update)
	if err != nil {
		t.Fatalf("AddressUpdate() error = %v", err)
	}
	if out.City != "Bandung" {
		t.Fatalf("city = %q, want Bandung", out.City)
	}
}

func TestAddressDeleteScopedToOwner(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.AddressAdd(accountCtx(7), validAddress())
	if err != nil {
		t.Fatalf("AddressAdd() error = %v", err)
	}

	err = fx.uc.AddressDelete(accountCtx(8), AddressDeleteInput{ID: created.ID})
	wantGoError(t, err, http.StatusNotFound)

	if err := fx.uc.AddressDelete(accountCtx(7), AddressDeleteInput{ID: created.ID}); err != nil {
		t.Fatalf("AddressDelete() error = %v", err)
	}

	err = fx.uc.AddressDelete(accountCtx(7), AddressDeleteInput{ID: created.ID})
	wantGoError(t, err, http.StatusNotFound)
}
