package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
)

func TestProfileRequiresAuthentication(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.Profile(context.Background())
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestProfileReturnsOwnAccount(t *testing.T) {
	fx := newFixture(t)
	fx.db.profiles[7] = &entity.Profile{ID: 7, Name: "Asha", Phone: "+6289876543210", Email: "asha@example.com"}

	out, err := fx.uc.Profile(accountCtx(7))
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if out.ID != 7 || out.Name != "Asha" {
		t.Fatalf("profile = %+v", out)
	}
}

func TestProfileUnknownAccount(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.Profile(accountCtx(7))
	wantGoError(t, err, http.StatusNotFound)
}

func TestProfileUpdatePartial(t *testing.T) {
	fx := newFixture(t)
	fx.db.profiles[7] = &entity.Profile{ID: 7, Name: "Asha", Email: "asha@example.com"}

	if err := fx.uc.ProfileUpdate(accountCtx(7), ProfileUpdateInput{Email: "New@Example.com"}); err != nil {
		t.Fatalf("ProfileUpdate() error = %v", err)
	}

	if fx.db.profiles[7].Email != "new@example.com" {
		t.Fatalf("email = %q, want lowercased update", fx.db.profiles[7].Email)
	}
	if fx.db.profiles[7].Name != "Asha" {
		t.Fatalf("name = %q, want untouched", fx.db.profiles[7].Name)
	}
}

func TestProfileUpdateRequiresAtLeastOneField(t *testing.T) {
	fx := newFixture(t)
	fx.db.profiles[7] = &entity.Profile{ID: 7}

	err := fx.uc.ProfileUpdate(accountCtx(7), ProfileUpdateInput{})
	wantGoError(t, err, http.StatusBadRequest)
}

func TestDirectoryAdminOnly(t *testing.T) {
	fx := newFixture(t)
	fx.db.directory = []entity.DirectoryEntry{
		{ID: 7, Name: "Asha", Phone: "+6289876543210", AddressCount: 2},
	}

	_, err := fx.uc.Directory(accountCtx(7))
	wantGoError(t, err, http.StatusForbidden)

	out, err := fx.uc.Directory(adminCtx())
	if err != nil {
		t.Fatalf("Directory() error = %v", err)
	}
	if len(out.Customers) != 1 || out.Customers[0].AddressCount != 2 {
		t.Fatalf("directory = %+v", out.Customers)
	}
}
