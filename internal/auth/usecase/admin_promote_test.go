package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
)

func TestAdminPromoteRequiresAuthentication(t *testing.T) {
	fx := newFixture(t)

	err := fx.uc.AdminPromote(context.Background(), AdminPromoteInput{AccountID: 1})
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestAdminPromoteForbiddenForRegularUser(t *testing.T) {
	fx := newFixture(t)
	ctx := jwt.SetAuth(context.Background(), jwt.Claims{Phone: "+6289876543210", Role: "user"})

	err := fx.uc.AdminPromote(ctx, AdminPromoteInput{AccountID: 1})
	wantGoError(t, err, http.StatusForbidden)
}

func TestAdminPromoteByAllowListedPhone(t *testing.T) {
	fx := newFixture(t)
	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 9, Phone: "+6289876543210", Role: entity.RoleUser}

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{Phone: testAdminPhone, Role: "user"})
	if err := fx.uc.AdminPromote(ctx, AdminPromoteInput{AccountID: 9}); err != nil {
		t.Fatalf("AdminPromote() error = %v", err)
	}

	if fx.db.accounts["+6289876543210"].Role != entity.RoleAdmin {
		t.Fatalf("role = %q, want admin", fx.db.accounts["+6289876543210"].Role)
	}
}

func TestAdminPromoteByRoleClaim(t *testing.T) {
	fx := newFixture(t)
	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 9, Phone: "+6289876543210", Role: entity.RoleUser}

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{Phone: "+6280000000000", Role: "admin"})
	if err := fx.uc.AdminPromote(ctx, AdminPromoteInput{AccountID: 9}); err != nil {
		t.Fatalf("AdminPromote() error = %v", err)
	}
}

func TestAdminPromoteUnknownAccount(t *testing.T) {
	fx := newFixture(t)
	ctx := jwt.SetAuth(context.Background(), jwt.Claims{Phone: testAdminPhone, Role: "user"})

	err := fx.uc.AdminPromote(ctx, AdminPromoteInput{AccountID: 404})
	wantGoError(t, err, http.StatusNotFound)
}
