package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack-server/api"
	"github.com/fintrackhq/fintrack-server/internal/config"
	"github.com/fintrackhq/fintrack-server/internal/logging"
	"github.com/fintrackhq/fintrack-server/internal/operator"
	"github.com/fintrackhq/fintrack-server/internal/service"
	"github.com/fintrackhq/fintrack-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("fintrack-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.Open(envConfig.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Open")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.NumWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.Port,
			JWTSecret: envConfig.JWTSecret,
			Storage:   dbStorage,
			Operator:  delegator,
			Service:   svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
