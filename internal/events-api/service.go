package eventsapi

import (
	"time"

	"github.com/communitycal/events-api/config"
	"github.com/communitycal/events-api/internal/factory"
	"github.com/communitycal/events-api/internal/factory/base"
	"github.com/communitycal/events-api/internal/geocode"
	"github.com/communitycal/events-api/internal/modules/event"
	eventmongo "github.com/communitycal/events-api/internal/modules/event/repository/mongodb"
	"github.com/communitycal/events-api/internal/modules/group"
	groupmongo "github.com/communitycal/events-api/internal/modules/group/repository/mongodb"
	groupusecase "github.com/communitycal/events-api/internal/modules/group/usecase"
	"github.com/communitycal/events-api/internal/modules/tag"
	"github.com/communitycal/events-api/pkg/httpclient"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/validator"
)

const serviceName = "events-api"

// Service model
type Service struct {
	deps    *base.Dependency
	modules []factory.ModuleFactory
}

// NewService assemble repositories, usecases, middleware and modules
func NewService(cfg *config.Config) factory.ServiceFactory {
	v := validator.NewValidator()

	httpRequest := httpclient.NewHTTPRequest(3, 500*time.Millisecond, 0)
	geocoder := geocode.NewLocationIQ(
		httpRequest,
		cfg.GeocodeCache,
		config.GlobalEnv.LocationIQBaseURL,
		config.GlobalEnv.LocationIQAPIKey,
		config.GlobalEnv.GeocodeCacheTTL,
	)

	groupRepo := groupmongo.NewGroupRepoMongo(cfg.MongoRead, cfg.MongoWrite)
	groupUsecase := groupusecase.NewGroupUsecase(groupRepo, geocoder, v)

	// the group usecase doubles as api key validator for editor credentials
	midd := middleware.NewMiddleware(config.GlobalEnv.BasicAuthUsername, config.GlobalEnv.BasicAuthPassword, groupUsecase)
	deps := base.InitDependency(cfg, midd, v)

	eventRepo := eventmongo.NewEventRepoMongo(cfg.MongoRead, cfg.MongoWrite)

	return &Service{
		deps: deps,
		modules: []factory.ModuleFactory{
			event.NewModule(deps, eventRepo, geocoder),
			group.NewModule(deps, groupUsecase),
			tag.NewModule(deps),
		},
	}
}

// GetDependency service base dependency
func (s *Service) GetDependency() *base.Dependency {
	return s.deps
}

// GetModules service modules
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name service name
func (s *Service) Name() string {
	return serviceName
}
