package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/backup"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

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

	svc := service.NewService(dbStorage)

	var uploader backup.Uploader
	if envConfig.BackupBucket != "" {
		uploader = backup.NewGCSUploader(envConfig.BackupBucket, envConfig.BackupPrefix, svc.Export.Snapshot)
	} else {
		logger.Warn("Backup.disabled no bucket configured")
	}
	backupService := backup.NewService(uploader, logger)

	operatorDelegator := operator.NewOperatorDelegator(dbStorage, backupService, numOperatorWorkers)
	operatorDelegator.Start()
	defer operatorDelegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     "9446",
			Service:  svc,
			Operator: operatorDelegator,
			Backup:   backupService,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
