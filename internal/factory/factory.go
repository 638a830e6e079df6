package factory

import (
	"github.com/communitycal/events-api/internal/factory/base"
	"github.com/communitycal/events-api/internal/factory/interfaces"
)

// ServiceFactory factory
type ServiceFactory interface {
	GetDependency() *base.Dependency
	GetModules() []ModuleFactory
	Name() string
}

// ModuleFactory factory
type ModuleFactory interface {
	RestHandler() interfaces.EchoRestHandler
	Name() string
}
