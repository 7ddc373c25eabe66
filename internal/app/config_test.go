package app

import (
	"os"
	"testing"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

// The default role in the shipped config must match the role new accounts
// are created with. If the two drift, Policy.Authorize treats every ordinary
// account as privileged because its role differs from the configured default.
func TestShippedConfigDefaultRoleMatchesCreatedAccounts(t *testing.T) {
	data, err := os.ReadFile("../../config/config.yaml")
	if err != nil {
		t.Fatalf("failed to read shipped config: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", data)
	if err != nil {
		t.Fatalf("failed to parse shipped config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	if got := cfg.GetString("auth.default_role"); got != entity.RoleUser.String() {
		t.Fatalf("auth.default_role = %q, want %q (the role inserted for new accounts)", got, entity.RoleUser)
	}

	adminPhones := cfg.GetArray("auth.admin_phones")
	if len(adminPhones) == 0 {
		t.Fatal("auth.admin_phones must list at least one phone")
	}

	pol := policy.New(adminPhones, cfg.GetString("auth.default_role"))

	if pol.Authorize("+6289999999999", entity.RoleUser.String()) {
		t.Fatal("ordinary account with an unlisted phone must not pass admin authorization")
	}
	if !pol.Authorize(adminPhones[0], entity.RoleUser.String()) {
		t.Fatal("allow-listed phone must pass admin authorization")
	}
	if !pol.Authorize("+6289999999999", entity.RoleAdmin.String()) {
		t.Fatal("admin role must pass admin authorization")
	}
}
