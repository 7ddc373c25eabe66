package jwt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

type stubUUID struct{}

func (stubUUID) Generate() string { return "test-jti" }

func newTestJWT(t *testing.T, clk *stubClock) *Symmetric {
	t.Helper()

	j, err := NewHS512(Config{
		Secret:    []byte(testSecret),
		Issuer:    "test-issuer",
		Audiences: []string{"test-aud"},
		Clock:     clk,
		UUID:      stubUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}
	return j
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("error = %v, want ErrSigningKeyTooShort", err)
	}
}

func TestGenerateVerifyRoundtrip(t *testing.T) {
	j := newTestJWT(t, &stubClock{now: time.Now()})

	token, err := j.Generate(Payload{AccountID: 42, Phone: "+6289876543210", Role: "user", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := j.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.AccountID != 42 || claims.Phone != "+6289876543210" || claims.Role != "user" || claims.Purpose != "login" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject = %q, want account id", claims.Subject)
	}
}

func TestGenerateChallengeTokenSubjectIsPhone(t *testing.T) {
	j := newTestJWT(t, &stubClock{now: time.Now()})

	token, err := j.Generate(Payload{Phone: "+6289876543210", Purpose: "signup-verify"}, time.Minute)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := j.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Subject != "+6289876543210" {
		t.Fatalf("subject = %q, want the phone", claims.Subject)
	}
	if claims.AccountID != 0 || claims.Role != "" {
		t.Fatalf("challenge claims should not carry account fields: %+v", claims)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	j := newTestJWT(t, &stubClock{now: time.Now().Add(-2 * time.Hour)})

	token, err := j.Generate(Payload{Phone: "+6289876543210", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := j.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	j := newTestJWT(t, &stubClock{now: time.Now()})

	token, err := j.Generate(Payload{Phone: "+6289876543210", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := j.Verify(tampered); err == nil {
		t.Fatal("expected tampered token to fail verification")
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	clk := &stubClock{now: time.Now()}
	j := newTestJWT(t, clk)

	other, err := NewHS512(Config{
		Secret:    []byte(testSecret),
		Issuer:    "other-issuer",
		Audiences: []string{"test-aud"},
		Clock:     clk,
		UUID:      stubUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	token, err := other.Generate(Payload{Phone: "+6289876543210", Purpose: "login"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := j.Verify(token); err == nil {
		t.Fatal("expected issuer mismatch to fail verification")
	}
}

func TestAuthContextHelpers(t *testing.T) {
	if got := GetAuth(context.Background()); got != nil {
		t.Fatalf("GetAuth on empty context = %+v, want nil", got)
	}

	ctx := SetAuth(context.Background(), Claims{AccountID: 7, Phone: "+6289876543210", Role: "admin"})
	clm := GetAuth(ctx)
	if clm == nil {
		t.Fatal("GetAuth returned nil after SetAuth")
	}
	if clm.AccountID != 7 || clm.Phone != "+6289876543210" || clm.Role != "admin" {
		t.Fatalf("claims = %+v", clm)
	}
}
