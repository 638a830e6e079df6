package tag

import (
	"github.com/communitycal/events-api/internal/factory/base"
	factoryinterfaces "github.com/communitycal/events-api/internal/factory/interfaces"
	"github.com/communitycal/events-api/internal/modules/tag/delivery/resthandler"
	"github.com/communitycal/events-api/internal/modules/tag/repository/mongodb"
	"github.com/communitycal/events-api/internal/modules/tag/usecase"
)

const moduleName = "tag"

// Module model
type Module struct {
	restHandler *resthandler.RestTagHandler
}

// NewModule constructor
func NewModule(deps *base.Dependency) *Module {
	repo := mongodb.NewTagRepoMongo(deps.Config.MongoRead, deps.Config.MongoWrite)
	uc := usecase.NewTagUsecase(repo, deps.Validator)

	return &Module{
		restHandler: resthandler.NewRestTagHandler(deps.Middleware, uc),
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
