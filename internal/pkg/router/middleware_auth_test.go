package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
)

const testAuthSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type stubResolver struct{ accounts map[int64]*Identity }

func (s stubResolver) Resolve(_ context.Context, id int64) (*Identity, error) {
	acc, ok := s.accounts[id]
	if !ok {
		return nil, errors.New("account not found")
	}
	return acc, nil
}

func newAuthTestRouter(t *testing.T, legacyFallback bool) (*Router, jwt.JWT) {
	t.Helper()

	yaml := "auth:\n  legacy_bearer_fallback: false\n"
	if legacyFallback {
		yaml = "auth:\n  legacy_bearer_fallback: true\n"
	}
	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(testAuthSecret),
		Issuer:    "test",
		Audiences: []string{"test"},
		Clock:     clock.New(),
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	resolver := stubResolver{accounts: map[int64]*Identity{
		7: {ID: 7, Phone: "+6289876543210", Role: "user"},
	}}

	ro := NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        tokener,
		Instrument: instrument.NewNoop(),
		Resolver:   resolver,
	})

	ro.GET("/api/v1/whoami", func(r *Request) (any, error) {
		clm := jwt.GetAuth(r.Context())
		if clm == nil {
			return map[string]string{}, nil
		}
		return map[string]string{"phone": clm.Phone, "role": clm.Role}, nil
	})
	ro.POST("/api/v1/auth/otp/request", func(_ *Request) (any, error) {
		return map[string]string{"ok": "true"}, nil
	})

	return ro, tokener
}

func doRequest(ro *Router, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticationMissingHeader(t *testing.T) {
	ro, _ := newAuthTestRouter(t, true)

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticationPublicEndpointSkipsAuth(t *testing.T) {
	ro, _ := newAuthTestRouter(t, true)

	rec := doRequest(ro, http.MethodPost, "/api/v1/auth/otp/request", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthenticationSessionToken(t *testing.T) {
	ro, tokener := newAuthTestRouter(t, false)

	token, err := tokener.Generate(jwt.Payload{AccountID: 7, Phone: "+6289876543210", Role: "user", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthenticationRoleClaimOverridesStoredRole(t *testing.T) {
	ro, tokener := newAuthTestRouter(t, false)

	// Stored role is "user"; the token carries "admin".
	token, err := tokener.Generate(jwt.Payload{AccountID: 7, Phone: "+6289876543210", Role: "admin", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); !strings.Contains(body, `"role":"admin"`) {
		t.Fatalf("body = %s, want role admin", body)
	}
}

func TestAuthenticationLegacyBearerFallback(t *testing.T) {
	ro, _ := newAuthTestRouter(t, true)

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); !strings.Contains(body, `"phone":"+6289876543210"`) {
		t.Fatalf("body = %s, want resolved phone", body)
	}
}

func TestAuthenticationLegacyBearerFallbackDisabled(t *testing.T) {
	ro, _ := newAuthTestRouter(t, false)

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", "7")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthenticationUnknownAccount(t *testing.T) {
	ro, tokener := newAuthTestRouter(t, true)

	token, err := tokener.Generate(jwt.Payload{AccountID: 999, Phone: "+6280000000000", Role: "user", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthenticationGarbageBearer(t *testing.T) {
	ro, _ := newAuthTestRouter(t, false)

	rec := doRequest(ro, http.MethodGet, "/api/v1/whoami", "definitely-not-a-jwt-or-an-account-id-just-noise-here")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
