package base

import (
	"github.com/communitycal/events-api/config"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/validator"
)

// Dependency base
type Dependency struct {
	Config     *config.Config
	Middleware middleware.Middleware
	Validator  *validator.Validator
}

// InitDependency constructor
func InitDependency(cfg *config.Config, midd middleware.Middleware, v *validator.Validator) *Dependency {
	return &Dependency{
		Config:     cfg,
		Middleware: midd,
		Validator:  v,
	}
}
