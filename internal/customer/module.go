package customer

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thearvan/arvan-backend/internal/customer/inbound"
	"github.com/thearvan/arvan-backend/internal/customer/outbound/db"
	"github.com/thearvan/arvan-backend/internal/customer/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/clock"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Policy     *policy.Policy             `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbCustomer := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbCustomer,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Policy:     dep.Policy,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
