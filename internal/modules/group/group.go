package group

import (
	"github.com/communitycal/events-api/internal/factory/base"
	factoryinterfaces "github.com/communitycal/events-api/internal/factory/interfaces"
	"github.com/communitycal/events-api/internal/modules/group/delivery/resthandler"
	"github.com/communitycal/events-api/internal/modules/group/usecase"
)

const moduleName = "group"

// Module model
type Module struct {
	restHandler *resthandler.RestGroupHandler
}

// NewModule constructor, the usecase is shared with the api key middleware
func NewModule(deps *base.Dependency, uc usecase.GroupUsecase) *Module {
	return &Module{
		restHandler: resthandler.NewRestGroupHandler(deps.Middleware, uc),
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
