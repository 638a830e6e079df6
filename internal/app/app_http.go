package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo"

	"github.com/communitycal/events-api/config"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/tracer"
	"github.com/communitycal/events-api/pkg/wrapper"
)

// ServeHTTP events api service
func (a *App) ServeHTTP() {
	a.httpServer.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	a.httpServer.HideBanner = true
	a.httpServer.Use(middleware.Logger, tracer.EchoRestTracerMiddleware)

	rootGroup := a.httpServer.Group(config.GlobalEnv.HTTPRootPath)
	rootGroup.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service up and running")
	})

	for _, m := range a.modules {
		if h := m.RestHandler(); h != nil {
			h.Mount(rootGroup)
		}
	}

	if err := a.httpServer.Start(fmt.Sprintf(":%d", config.GlobalEnv.HTTPPort)); err != nil {
		log.Println(err)
	}
}
