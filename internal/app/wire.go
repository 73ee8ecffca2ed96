//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"parceltrack/internal/handlers/cli"
	"parceltrack/internal/handlers/tasks/export_refresh"
	"parceltrack/internal/pkg/config"
	accountRepo "parceltrack/internal/repository/account"
	shipmentRepo "parceltrack/internal/repository/shipment"
	exportService "parceltrack/internal/service/export"
	identityService "parceltrack/internal/service/identity"
	trackingService "parceltrack/internal/service/tracking"
	"parceltrack/pkg/logger"
	"parceltrack/pkg/tx"
)

// InitializeApplication для интерактивной сессии (cmd/cli)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExportDir,
		provideRefreshInterval,

		provideAccountRepository,
		provideShipmentRepository,

		provideExportService,
		provideIdentityService,
		provideTrackingService,
		provideSession,

		provideExportRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(cli.IdentityService), new(*identityService.Identity)),
		wire.Bind(new(cli.TrackingService), new(*trackingService.Tracking)),

		wire.Bind(new(identityService.AccountRepository), new(*accountRepo.Repository)),
		wire.Bind(new(identityService.Exporter), new(*exportService.Service)),
		wire.Bind(new(identityService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trackingService.ShipmentRepository), new(*shipmentRepo.Repository)),
		wire.Bind(new(trackingService.AccountRepository), new(*accountRepo.Repository)),
		wire.Bind(new(trackingService.Exporter), new(*exportService.Service)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(exportService.ShipmentSource), new(*shipmentRepo.Repository)),
		wire.Bind(new(exportService.AccountSource), new(*accountRepo.Repository)),

		wire.Bind(new(export_refresh.Service), new(*exportService.Service)),
	)
	return &Application{}, nil
}
