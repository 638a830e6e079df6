package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo"

	"github.com/communitycal/events-api/internal/factory"
)

// App service
type App struct {
	serviceName string
	modules     []factory.ModuleFactory
	httpServer  *echo.Echo
}

// New service app
func New(service factory.ServiceFactory) *App {
	defer log.Printf("Starting %s service\n", service.Name())

	return &App{
		serviceName: service.Name(),
		modules:     service.GetModules(),
		httpServer:  echo.New(),
	}
}

// Run start app until interrupted
func (a *App) Run() {
	go a.ServeHTTP()

	quitSignal := make(chan os.Signal, 1)
	signal.Notify(quitSignal, os.Interrupt, syscall.SIGTERM)
	<-quitSignal

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Shutdown(ctx)
}

// Shutdown graceful shutdown http server, panic if there is still a process running when the request exceed given timeout in context
func (a *App) Shutdown(ctx context.Context) {
	println()
	log.Println("Stopping HTTP server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		panic(err)
	}
}
