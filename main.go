package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logging.SetLevel(logger, envConfig.LogLevel)

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	if err := storage.Migrate(dbStorage.DB); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	var publisher events.Publisher = events.NopPublisher{}
	if envConfig.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange, logger)
		if err != nil {
			logrus.WithError(err).Fatal("events.NewAMQPPublisher")
			return
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	} else {
		logrus.Info("AMQP_URL not set, change events disabled")
	}

	delegator := operator.NewOperatorDelegator(dbStorage, publisher, logger, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Database: dbStorage.DB,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logrus.WithError(err).Error("api.Rest.Serve")
	}
}
