package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/thearvan/arvan-backend/internal/notification/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
)

func adminCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{AccountID: 1, Phone: testAdminPhone, Role: "user"})
}

func TestEmailSendRecordsLog(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.uc.EmailSend(adminCtx(), EmailSendInput{
		To:      "Customer@Example.COM",
		Subject: "Your order",
		HTML:    "<p>hello</p>",
	})
	if err != nil {
		t.Fatalf("EmailSend() error = %v", err)
	}

	if out.Status != "sent" {
		t.Fatalf("status = %q, want sent", out.Status)
	}
	if len(fx.mail.sent) != 1 || fx.mail.sent[0].To[0] != "customer@example.com" {
		t.Fatalf("mail.sent = %+v, want lowercased recipient", fx.mail.sent)
	}

	logRow, ok := fx.db.logs[out.ID]
	if !ok {
		t.Fatal("expected a stored email log")
	}
	if logRow.Status != entity.EmailStatusSent {
		t.Fatalf("log status = %q", logRow.Status)
	}
	if logRow.Metadata["sent_by"] != testAdminPhone {
		t.Fatalf("metadata = %+v, want sent_by recorded", logRow.Metadata)
	}
}

func TestEmailSendFailureStillLogged(t *testing.T) {
	fx := newFixture(t)
	fx.mail.err = errors.New("smtp down")

	_, err := fx.uc.EmailSend(adminCtx(), EmailSendInput{
		To:      "customer@example.com",
		Subject: "Your order",
		HTML:    "<p>hello</p>",
	})
	wantGoError(t, err, http.StatusInternalServerError)

	if len(fx.db.logs) != 1 {
		t.Fatalf("logs = %d, want the failed attempt recorded", len(fx.db.logs))
	}
	for _, l := range fx.db.logs {
		if l.Status != entity.EmailStatusFailed {
			t.Fatalf("log status = %q, want failed", l.Status)
		}
		if l.Metadata["error"] == nil {
			t.Fatalf("metadata = %+v, want error recorded", l.Metadata)
		}
	}
}

func TestEmailSendRequiresAdmin(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.EmailSend(context.Background(), EmailSendInput{To: "a@b.com", Subject: "s", HTML: "x"})
	wantGoError(t, err, http.StatusUnauthorized)

	userCtx := jwt.SetAuth(context.Background(), jwt.Claims{AccountID: 2, Phone: "+6289999999999", Role: "user"})
	_, err = fx.uc.EmailSend(userCtx, EmailSendInput{To: "a@b.com", Subject: "s", HTML: "x"})
	wantGoError(t, err, http.StatusForbidden)
}

func TestEmailListPagination(t *testing.T) {
	fx := newFixture(t)
	for i := int64(1); i <= 25; i++ {
		fx.db.logs[i] = entity.EmailLog{ID: i, To: "a@b.com", Status: entity.EmailStatusSent}
	}

	out, err := fx.uc.EmailList(adminCtx(), EmailListInput{})
	if err != nil {
		t.Fatalf("EmailList() error = %v", err)
	}
	if len(out.Emails) != 20 {
		t.Fatalf("default page size = %d, want 20", len(out.Emails))
	}

	out, err = fx.uc.EmailList(adminCtx(), EmailListInput{Size: 10, Page: 3})
	if err != nil {
		t.Fatalf("EmailList() error = %v", err)
	}
	if len(out.Emails) != 5 {
		t.Fatalf("page 3 of 10 = %d entries, want 5", len(out.Emails))
	}
}

func TestEmailUpdateStatus(t *testing.T) {
	fx := newFixture(t)
	fx.db.logs[1] = entity.EmailLog{ID: 1, Status: entity.EmailStatusSent}

	if err := fx.uc.EmailUpdateStatus(adminCtx(), EmailUpdateStatusInput{ID: 1, Status: "failed"}); err != nil {
		t.Fatalf("EmailUpdateStatus() error = %v", err)
	}
	if fx.db.logs[1].Status != entity.EmailStatusFailed {
		t.Fatalf("status = %q, want failed", fx.db.logs[1].Status)
	}

	err := fx.uc.EmailUpdateStatus(adminCtx(), EmailUpdateStatusInput{ID: 1, Status: "bounced"})
	wantGoError(t, err, http.StatusBadRequest)

	err = fx.uc.EmailUpdateStatus(adminCtx(), EmailUpdateStatusInput{ID: 404, Status: "sent"})
	wantGoError(t, err, http.StatusNotFound)
}

func TestEmailDelete(t *testing.T) {
	fx := newFixture(t)
	fx.db.logs[1] = entity.EmailLog{ID: 1, Status: entity.EmailStatusSent}

	if err := fx.uc.EmailDelete(adminCtx(), EmailDeleteInput{ID: 1}); err != nil {
		t.Fatalf("EmailDelete() error = %v", err)
	}
	if len(fx.db.logs) != 0 {
		t.Fatal("expected the log to be removed")
	}

	err := fx.uc.EmailDelete(adminCtx(), EmailDeleteInput{ID: 1})
	wantGoError(t, err, http.StatusNotFound)
}
