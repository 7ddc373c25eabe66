package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
)

func TestOtpRequestIssuesChallenge(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	out, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	if out.ChallengeToken == "" {
		t.Fatal("expected a challenge token")
	}

	ch, ok := fx.db.challenges["+6289876543210"]
	if !ok {
		t.Fatal("expected a stored challenge")
	}
	if len(ch.Code) != 6 {
		t.Fatalf("code length = %d, want 6", len(ch.Code))
	}
	if ch.Purpose != entity.PurposeLogin {
		t.Fatalf("purpose = %q, want login", ch.Purpose)
	}

	wantExpiry := fx.clk.Now().Add(15 * time.Minute)
	if !ch.ExpiresAt.Equal(wantExpiry) || !out.ExpiresAt.Equal(wantExpiry) {
		t.Fatalf("expiry = %v / %v, want %v", ch.ExpiresAt, out.ExpiresAt, wantExpiry)
	}

	if len(fx.msg.published) != 1 {
		t.Fatalf("published events = %d, want 1", len(fx.msg.published))
	}
	ev := fx.msg.published[0]
	if ev.Phone != ch.Phone || ev.Code != ch.Code || ev.TokenHash != ch.TokenHash {
		t.Fatalf("published event %+v does not match stored challenge %+v", ev, ch)
	}

	claims, err := fx.jwt.Verify(out.ChallengeToken)
	if err != nil {
		t.Fatalf("challenge token does not verify: %v", err)
	}
	if claims.Phone != "+6289876543210" || claims.Purpose != "login" {
		t.Fatalf("claims = %+v, want phone and purpose bound", claims)
	}
}

func TestOtpRequestResetPurposeGetsLongerExpiry(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.uc.OtpRequest(context.Background(), OtpRequestInput{Phone: "+6289876543210", Purpose: "password-reset"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}

	if want := fx.clk.Now().Add(time.Hour); !out.ExpiresAt.Equal(want) {
		t.Fatalf("expiry = %v, want %v", out.ExpiresAt, want)
	}
}

func TestOtpRequestSupersedesPreviousChallenge(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("first OtpRequest() error = %v", err)
	}
	firstChallenge := fx.db.challenges["+6289876543210"]

	if _, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"}); err != nil {
		t.Fatalf("second OtpRequest() error = %v", err)
	}

	if len(fx.db.challenges) != 1 {
		t.Fatalf("stored challenges = %d, want 1", len(fx.db.challenges))
	}
	if fx.db.challenges["+6289876543210"].TokenHash == firstChallenge.TokenHash {
		t.Fatal("expected the second challenge to replace the first")
	}

	// The superseded token no longer matches any stored row.
	_, err = fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: firstChallenge.Code, ChallengeToken: first.ChallengeToken})
	wantGoError(t, err, http.StatusBadRequest)
}

func TestOtpRequestInvalidPurpose(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.OtpRequest(context.Background(), OtpRequestInput{Phone: "+6289876543210", Purpose: "signup"})
	wantGoError(t, err, http.StatusBadRequest)
}

func TestOtpRequestInvalidPhone(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.OtpRequest(context.Background(), OtpRequestInput{Phone: "081234", Purpose: "login"})
	wantGoError(t, err, http.StatusBadRequest)
}

func TestOtpRequestRateLimited(t *testing.T) {
	fx := newFixture(t)
	fx.lim.allowed = false

	_, err := fx.uc.OtpRequest(context.Background(), OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	wantGoError(t, err, http.StatusTooManyRequests)

	if len(fx.lim.keys) != 1 || fx.lim.keys[0] != "otp:+6289876543210" {
		t.Fatalf("limiter keys = %v, want [otp:+6289876543210]", fx.lim.keys)
	}
	if len(fx.db.challenges) != 0 {
		t.Fatal("no challenge should be stored when rate limited")
	}
}

func TestOtpRequestPublishFailureDoesNotFail(t *testing.T) {
	fx := newFixture(t)
	fx.msg.err = errors.New("broker unavailable")

	out, err := fx.uc.OtpRequest(context.Background(), OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v, want nil despite publish failure", err)
	}
	if out.ChallengeToken == "" {
		t.Fatal("expected a challenge token")
	}
	if len(fx.db.challenges) != 1 {
		t.Fatal("challenge must stay stored when delivery fails")
	}
}

func TestOtpResendDerivesPhoneAndPurposeFromToken(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "signup-verify"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	firstChallenge := fx.db.challenges["+6289876543210"]

	if _, err := fx.uc.OtpResend(ctx, OtpResendInput{ChallengeToken: first.ChallengeToken}); err != nil {
		t.Fatalf("OtpResend() error = %v", err)
	}

	ch := fx.db.challenges["+6289876543210"]
	if ch.TokenHash == firstChallenge.TokenHash {
		t.Fatal("expected resend to mint a fresh challenge")
	}
	if ch.Purpose != entity.PurposeSignupVerify {
		t.Fatalf("purpose = %q, want signup-verify carried over", ch.Purpose)
	}
	if len(fx.db.challenges) != 1 {
		t.Fatalf("stored challenges = %d, want 1", len(fx.db.challenges))
	}
}

func TestOtpResendRejectsGarbageToken(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.OtpResend(context.Background(), OtpResendInput{ChallengeToken: "not-a-token"})
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestOtpVerifyMintsSession(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	issued, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	code := fx.db.challenges["+6289876543210"].Code

	out, err := fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: code, ChallengeToken: issued.ChallengeToken})
	if err != nil {
		t.Fatalf("OtpVerify() error = %v", err)
	}

	if out.Account == nil || out.Account.Phone != "+6289876543210" {
		t.Fatalf("account = %+v, want created for the phone", out.Account)
	}
	if out.Account.PhoneVerifiedAt == nil {
		t.Fatal("expected the account to be marked verified")
	}
	if len(fx.db.challenges) != 0 {
		t.Fatal("expected the challenge to be consumed")
	}

	claims, err := fx.jwt.Verify(out.SessionToken)
	if err != nil {
		t.Fatalf("session token does not verify: %v", err)
	}
	if claims.AccountID != out.Account.ID || claims.Purpose != "login" || claims.Role != "user" {
		t.Fatalf("session claims = %+v", claims)
	}
}

func TestOtpVerifyWrongCode(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	issued, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}

	code := fx.db.challenges["+6289876543210"].Code
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err = fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: wrong, ChallengeToken: issued.ChallengeToken})
	gerr := wantGoError(t, err, http.StatusBadRequest)
	if gerr.Msg() != "Code does not match this challenge" {
		t.Fatalf("message = %q", gerr.Msg())
	}

	if len(fx.db.challenges) != 1 {
		t.Fatal("a failed attempt must not consume the challenge")
	}
}

func TestOtpVerifyConsumesExactlyOnce(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	issued, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	code := fx.db.challenges["+6289876543210"].Code

	if _, err := fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: code, ChallengeToken: issued.ChallengeToken}); err != nil {
		t.Fatalf("first OtpVerify() error = %v", err)
	}

	_, err = fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: code, ChallengeToken: issued.ChallengeToken})
	wantGoError(t, err, http.StatusBadRequest)
}

func TestOtpVerifyExpiredToken(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	// Issue in the past so the 15 minute window has already closed.
	fx.clk.now = time.Now().Add(-time.Hour)
	issued, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	code := fx.db.challenges["+6289876543210"].Code

	_, err = fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: code, ChallengeToken: issued.ChallengeToken})
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestOtpVerifyMarksExistingAccountVerified(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 42, Phone: "+6289876543210", Role: entity.RoleUser}

	issued, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "signup-verify"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	code := fx.db.challenges["+6289876543210"].Code

	out, err := fx.uc.OtpVerify(ctx, OtpVerifyInput{Code: code, ChallengeToken: issued.ChallengeToken})
	if err != nil {
		t.Fatalf("OtpVerify() error = %v", err)
	}
	if out.Account.ID != 42 {
		t.Fatalf("account id = %d, want the existing 42", out.Account.ID)
	}
	if out.Account.PhoneVerifiedAt == nil {
		t.Fatal("expected existing account to be marked verified")
	}
}

func TestSweepExpiredChallenges(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	now := fx.clk.Now()
	fx.db.challenges["+6281000000001"] = entity.OtpChallenge{Phone: "+6281000000001", ExpiresAt: now.Add(-time.Minute)}
	fx.db.challenges["+6281000000002"] = entity.OtpChallenge{Phone: "+6281000000002", ExpiresAt: now.Add(time.Minute)}

	if err := fx.uc.SweepExpiredChallenges(ctx); err != nil {
		t.Fatalf("SweepExpiredChallenges() error = %v", err)
	}

	if _, ok := fx.db.challenges["+6281000000001"]; ok {
		t.Fatal("expired challenge should be gone")
	}
	if _, ok := fx.db.challenges["+6281000000002"]; !ok {
		t.Fatal("live challenge should remain")
	}
}
