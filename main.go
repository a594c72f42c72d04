package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/shared-ledger/api"
	"github.com/carson-networks/shared-ledger/internal/config"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/internal/money"
	"github.com/carson-networks/shared-ledger/internal/operator"
	"github.com/carson-networks/shared-ledger/internal/service"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/migrations"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("shared-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(); err != nil {
			logrus.WithError(err).Error("storage.Close")
		}
	}()

	if envConfig.MigrateOnStart {
		result, err := migrations.Up(dbStorage.DB)
		if err != nil {
			logrus.WithError(err).Fatal("migrations.Up")
			return
		}
		logrus.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreMigrationVersion,
			"postMigrationVersion": result.PostMigrationVersion,
		}).Info("migrations applied")
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, money.NewFormatter(envConfig.Currency), nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.ServerPort,
		Service: svc,
		DB:      dbStorage,
	}
	httpRest.Serve(ctx)

	logrus.Info("shared-ledger stopped")
}
