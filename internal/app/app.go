package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/goroutine"
	"github.com/thearvan/arvan-backend/internal/pkg/hash"
	"github.com/thearvan/arvan-backend/internal/pkg/idempotency"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/jwt"
	"github.com/thearvan/arvan-backend/internal/pkg/mail"
	"github.com/thearvan/arvan-backend/internal/pkg/messaging"
	"github.com/thearvan/arvan-backend/internal/pkg/otp"
	"github.com/thearvan/arvan-backend/internal/pkg/ratelimit"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
	"github.com/thearvan/arvan-backend/internal/pkg/storage"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/pkg/whatsapp"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
	"go.uber.org/atomic"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	otp       otp.OTP
	jwt       jwt.JWT
	policy    *policy.Policy

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	limiter   ratelimit.Limiter
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage
	whatsapp  whatsapp.Sender

	// server
	router     *router.Router
	httpServer *http.Server
	ready      *atomic.Bool

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		ready:  atomic.NewBool(false),
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initWhatsApp()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
