package app

import (
	"log/slog"
	"os"

	"github.com/thearvan/arvan-backend/internal/auth"
	"github.com/thearvan/arvan-backend/internal/customer"
	"github.com/thearvan/arvan-backend/internal/media"
	"github.com/thearvan/arvan-backend/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Goroutine:  a.goroutine,
			Router:     a.router,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			HMAC:       a.hmac,
			Bcrypt:     a.bcrypt,
			Clock:      a.clock,
			Otp:        a.otp,
			Limiter:    a.limiter,
			Policy:     a.policy,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.customer.enabled") {
		if err := customer.New(customer.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Policy:     a.policy,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module customer", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:         a.ctx,
			DBConn:      a.dbConn,
			Messaging:   a.messaging,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Clock:       a.clock,
			Goroutine:   a.goroutine,
			Validator:   a.validator,
			Router:      a.router,
			Mail:        a.mail,
			WhatsApp:    a.whatsapp,
			Idempotency: a.idemp,
			Policy:      a.policy,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.media.enabled") {
		if err := media.New(media.Dependency{
			Storage:    a.storage,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			OID:        a.oid,
			Policy:     a.policy,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module media", "error", err)
			os.Exit(1)
		}
	}
}
