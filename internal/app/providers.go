package app

import (
	"context"
	"os"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"parceltrack/internal/handlers/cli"
	"parceltrack/internal/handlers/tasks/export_refresh"
	"parceltrack/internal/pkg/config"
	accountRepo "parceltrack/internal/repository/account"
	shipmentRepo "parceltrack/internal/repository/shipment"
	exportService "parceltrack/internal/service/export"
	identityService "parceltrack/internal/service/identity"
	trackingService "parceltrack/internal/service/tracking"
	"parceltrack/pkg/background"
	"parceltrack/pkg/logger"
	"parceltrack/pkg/querier"
	"parceltrack/pkg/tx"
)

type (
	RefreshInterval time.Duration
	ExportDir       string
)

type Application struct {
	Session           *cli.Session
	BackgroundWorkers *background.Worker
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideExportDir(cfg *config.Config) ExportDir {
	return ExportDir(cfg.Export.Dir)
}

func provideRefreshInterval(cfg *config.Config) RefreshInterval {
	return RefreshInterval(cfg.Export.RefreshInterval)
}

func provideExportService(
	log logger.Logger,
	shipments exportService.ShipmentSource,
	accounts exportService.AccountSource,
	dir ExportDir,
) *exportService.Service {
	return exportService.New(log, shipments, accounts, string(dir))
}

func provideIdentityService(
	repository identityService.AccountRepository,
	exporter identityService.Exporter,
	txManager identityService.TxManager,
) *identityService.Identity {
	return identityService.New(repository, exporter, txManager)
}

func provideTrackingService(
	shipments trackingService.ShipmentRepository,
	accounts trackingService.AccountRepository,
	exporter trackingService.Exporter,
	txManager trackingService.TxManager,
) *trackingService.Tracking {
	return trackingService.New(shipments, accounts, exporter, txManager)
}

func provideSession(
	log logger.Logger,
	identity cli.IdentityService,
	tracking cli.TrackingService,
) *cli.Session {
	return cli.New(log, identity, tracking, os.Stdin, os.Stdout)
}

func provideExportRefreshTask(
	log logger.Logger,
	service export_refresh.Service,
	interval RefreshInterval,
) *export_refresh.ExportRefresh {
	return export_refresh.NewExportRefresh(log, service, time.Duration(interval))
}

func provideTaskList(
	exportRefreshTask *export_refresh.ExportRefresh,
) []background.Task {
	return []background.Task{
		exportRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
