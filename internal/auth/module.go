package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thearvan/arvan-backend/internal/auth/inbound"
	"github.com/thearvan/arvan-backend/internal/auth/outbound/db"
	"github.com/thearvan/arvan-backend/internal/auth/outbound/mq"
	"github.com/thearvan/arvan-backend/internal/auth/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goroutine"
	"github.com/thearvan/arvan-backend/internal/pkg/hash"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/messaging"
	"github.com/thearvan/arvan-backend/internal/pkg/otp"
	"github.com/thearvan/arvan-backend/internal/pkg/ratelimit"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

type Dependency struct {
	Ctx        context.Context            `validate:"required"`
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Otp        otp.OTP                    `validate:"required"`
	Limiter    ratelimit.Limiter          `validate:"required"`
	Policy     *policy.Policy             `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		HMAC:          dep.HMAC,
		OTP:           dep.Otp,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Limiter:       dep.Limiter,
		Policy:        dep.Policy,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	registerChallengeSweeper(dep, uc)

	return nil
}

// registerChallengeSweeper runs a periodic cleanup of expired challenges
// until the application context is canceled.
func registerChallengeSweeper(dep Dependency, uc *usecase.Usecase) {
	interval := dep.Config.GetMinute("modules.auth.sweep_interval_minutes")
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	dep.Goroutine.Go(dep.Ctx, func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := uc.SweepExpiredChallenges(ctx); err != nil {
					continue
				}
			}
		}
	})
}
