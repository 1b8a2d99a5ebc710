package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/beka-birhanu/vinom-maze-gate/api"
	"github.com/beka-birhanu/vinom-maze-gate/config"
	"github.com/beka-birhanu/vinom-maze-gate/service"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
	"google.golang.org/grpc"
)

const shutdownGrace = 2 * time.Second

// Global variables for dependencies
var (
	grpcConnListener   net.Listener
	grpcServer         *grpc.Server
	gateSessionManager *service.GateSessionManager
	appLogger          i.Logger
)

func initGateSessionManager() {
	gateLogger, err := logger.New("GATE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gate logger: %v", err))
		os.Exit(1)
	}
	manager, err := service.NewGateSessionManager(
		&service.Config{
			Game: service.GameConfig{
				MazeSize:    config.Envs.MazeSize,
				Decoys:      config.Envs.MazeDecoys,
				Seed:        config.Envs.MazeSeed,
				TimeBudget:  config.Envs.TimeBudget,
				TickPeriod:  config.Envs.TickPeriod(),
				RepeatDelay: config.Envs.MoveRepeatDelay(),
			},
			EventBuffer: config.Envs.EventBufferSize,
			Logger:      gateLogger,
		},
	)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gate session manager: %v", err))
		os.Exit(1)
	}
	gateSessionManager = manager
	appLogger.Info("Gate Session Manager initialized")
}

func initGateController() {
	apiLogger, err := logger.New("GATE-API", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gate controller logger: %v", err))
		os.Exit(1)
	}
	grpcServer = grpc.NewServer()
	err = api.RegisterNewGateServer(grpcServer, gateSessionManager, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating and Registering gate controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Gate controller initialized")
}

func stopGRPC() {
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownGrace):
		grpcServer.Stop()
	}
}

func main() {
	l, err := logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}
	appLogger = l

	initGateSessionManager()
	initGateController()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	managerDone := make(chan struct{})
	go func() {
		defer close(managerDone)
		gateSessionManager.Run(ctx)
	}()

	addr := fmt.Sprintf("%s:%v", config.Envs.Host, config.Envs.GrpcPort)
	grpcConnListener, err = net.Listen("tcp", addr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Listening tcp: %v", err))
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		appLogger.Info("Shutting down")
		stopGRPC()
	}()

	appLogger.Info(fmt.Sprintf("Serving gRPC at: %s", addr))
	if err := grpcServer.Serve(grpcConnListener); err != nil {
		appLogger.Error(fmt.Sprintf("Serving gRPC: %v", err))
		os.Exit(1)
	}

	gateSessionManager.Stop()
	<-managerDone
}
