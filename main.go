package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/session-ledger/api"
	"github.com/carson-networks/session-ledger/internal/config"
	"github.com/carson-networks/session-ledger/internal/logging"
	"github.com/carson-networks/session-ledger/internal/operator"
	"github.com/carson-networks/session-ledger/internal/service"
	"github.com/carson-networks/session-ledger/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("session-ledger starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Config:   envConfig,
			Service:  svc,
			Database: dbStorage,
		}
		return httpRest.Serve(ctx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("session-ledger stopped with error")
		return
	}
	logger.Info("session-ledger stopped")
}
