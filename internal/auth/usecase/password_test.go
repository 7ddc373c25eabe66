package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
)

func resetChallenge(t *testing.T, fx *fixture, phone string) string {
	t.Helper()

	out, err := fx.uc.OtpRequest(context.Background(), OtpRequestInput{Phone: phone, Purpose: "password-reset"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}
	return out.ChallengeToken
}

func TestPasswordResetThenLogin(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 7, Phone: "+6289876543210", Role: entity.RoleUser}
	token := resetChallenge(t, fx, "+6289876543210")

	if err := fx.uc.PasswordReset(ctx, PasswordResetInput{NewPassword: "correct horse battery", ResetToken: token}); err != nil {
		t.Fatalf("PasswordReset() error = %v", err)
	}

	if fx.db.accounts["+6289876543210"].PasswordHash == "" {
		t.Fatal("expected a stored password hash")
	}
	if len(fx.db.challenges) != 0 {
		t.Fatal("expected the reset challenge to be consumed")
	}

	out, err := fx.uc.PasswordLogin(ctx, PasswordLoginInput{Phone: "+6289876543210", Password: "correct horse battery"})
	if err != nil {
		t.Fatalf("PasswordLogin() error = %v", err)
	}
	if out.SessionToken == "" {
		t.Fatal("expected a session token")
	}
}

func TestPasswordResetTokenConsumedOnce(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 7, Phone: "+6289876543210", Role: entity.RoleUser}
	token := resetChallenge(t, fx, "+6289876543210")

	if err := fx.uc.PasswordReset(ctx, PasswordResetInput{NewPassword: "correct horse battery", ResetToken: token}); err != nil {
		t.Fatalf("first PasswordReset() error = %v", err)
	}

	err := fx.uc.PasswordReset(ctx, PasswordResetInput{NewPassword: "another password 1", ResetToken: token})
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestPasswordResetSupersededToken(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 7, Phone: "+6289876543210", Role: entity.RoleUser}

	oldToken := resetChallenge(t, fx, "+6289876543210")
	resetChallenge(t, fx, "+6289876543210") // supersedes the first

	err := fx.uc.PasswordReset(ctx, PasswordResetInput{NewPassword: "correct horse battery", ResetToken: oldToken})
	gerr := wantGoError(t, err, http.StatusUnauthorized)
	if gerr.Msg() != "Reset token has been superseded" {
		t.Fatalf("message = %q", gerr.Msg())
	}
}

func TestPasswordResetRejectsOtherPurposeToken(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	out, err := fx.uc.OtpRequest(ctx, OtpRequestInput{Phone: "+6289876543210", Purpose: "login"})
	if err != nil {
		t.Fatalf("OtpRequest() error = %v", err)
	}

	err = fx.uc.PasswordReset(ctx, PasswordResetInput{NewPassword: "correct horse battery", ResetToken: out.ChallengeToken})
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestPasswordResetUnknownAccount(t *testing.T) {
	fx := newFixture(t)
	token := resetChallenge(t, fx, "+6289876543210")

	err := fx.uc.PasswordReset(context.Background(), PasswordResetInput{NewPassword: "correct horse battery", ResetToken: token})
	wantGoError(t, err, http.StatusNotFound)
}

func TestPasswordResetShortPassword(t *testing.T) {
	fx := newFixture(t)
	token := resetChallenge(t, fx, "+6289876543210")

	err := fx.uc.PasswordReset(context.Background(), PasswordResetInput{NewPassword: "short", ResetToken: token})
	wantGoError(t, err, http.StatusBadRequest)
}

func TestPasswordLoginWrongPassword(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 7, Phone: "+6289876543210", Role: entity.RoleUser}
	token := resetChallenge(t, fx, "+6289876543210")
	if err := fx.uc.PasswordReset(ctx, PasswordResetInput{NewPassword: "correct horse battery", ResetToken: token}); err != nil {
		t.Fatalf("PasswordReset() error = %v", err)
	}

	_, err := fx.uc.PasswordLogin(ctx, PasswordLoginInput{Phone: "+6289876543210", Password: "wrong password"})
	gerr := wantGoError(t, err, http.StatusUnauthorized)
	if gerr.Msg() != "Phone or password is incorrect" {
		t.Fatalf("message = %q", gerr.Msg())
	}
}

func TestPasswordLoginOtpOnlyAccount(t *testing.T) {
	fx := newFixture(t)

	// Created through the OTP flow, never went through a reset.
	fx.db.accounts["+6289876543210"] = &entity.Account{ID: 7, Phone: "+6289876543210", Role: entity.RoleUser}

	_, err := fx.uc.PasswordLogin(context.Background(), PasswordLoginInput{Phone: "+6289876543210", Password: "anything at all"})
	wantGoError(t, err, http.StatusUnauthorized)
}

func TestPasswordLoginUnknownPhone(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.PasswordLogin(context.Background(), PasswordLoginInput{Phone: "+6289876543210", Password: "anything at all"})
	wantGoError(t, err, http.StatusUnauthorized)
}
