package main

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/communitycal/events-api/config"
	"github.com/communitycal/events-api/internal/app"
	eventsapi "github.com/communitycal/events-api/internal/events-api"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/tracer"
)

const serviceName = "events-api"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Failed to start %s service: %v\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.Init(ctx, fmt.Sprintf("cmd/%s/", serviceName))
	defer cfg.Exit(context.Background())

	logger.InitZap(serviceName)
	logger.SetDebugMode(config.GlobalEnv.DebugMode)
	if err := tracer.InitOpenTracing(config.GlobalEnv.JaegerTracingHost, serviceName); err != nil {
		logger.LogEf("tracer: %v", err)
	}

	srv := eventsapi.NewService(cfg)
	app.New(srv).Run()
}
