package event

import (
	"github.com/communitycal/events-api/config"
	"github.com/communitycal/events-api/internal/factory/base"
	factoryinterfaces "github.com/communitycal/events-api/internal/factory/interfaces"
	"github.com/communitycal/events-api/internal/geocode"
	"github.com/communitycal/events-api/internal/modules/event/delivery/resthandler"
	"github.com/communitycal/events-api/internal/modules/event/repository/interfaces"
	"github.com/communitycal/events-api/internal/modules/event/usecase"
)

const moduleName = "event"

// Module model
type Module struct {
	restHandler *resthandler.RestEventHandler
}

// NewModule constructor
func NewModule(deps *base.Dependency, repo interfaces.EventRepository, geocoder geocode.Geocoder) *Module {
	uc := usecase.NewEventUsecase(repo, geocoder, deps.Validator, config.GlobalEnv.ServerOrigin)

	return &Module{
		restHandler: resthandler.NewRestEventHandler(deps.Middleware, uc, deps.Config.QueryCache, config.GlobalEnv.QueryCacheTTL),
	}
}

// RestHandler delivery factory
func (m *Module) RestHandler() factoryinterfaces.EchoRestHandler {
	return m.restHandler
}

// Name module name
func (m *Module) Name() string {
	return moduleName
}
