package media

import (
	"github.com/thearvan/arvan-backend/internal/media/inbound"
	"github.com/thearvan/arvan-backend/internal/media/outbound/obj"
	"github.com/thearvan/arvan-backend/internal/media/usecase"
	"github.com/thearvan/arvan-backend/internal/pkg/config"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
	"github.com/thearvan/arvan-backend/internal/pkg/storage"
	"github.com/thearvan/arvan-backend/internal/pkg/uid"
	"github.com/thearvan/arvan-backend/internal/pkg/validator"
	"github.com/thearvan/arvan-backend/internal/shared/policy"
)

type Dependency struct {
	Storage    storage.Storage            `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	Policy     *policy.Policy             `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoStorage := obj.NewStorage(dep.Storage, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoStorage: repoStorage,
		Config:      dep.Config,
		OID:         dep.OID,
		Validator:   dep.Validator,
		Policy:      dep.Policy,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
