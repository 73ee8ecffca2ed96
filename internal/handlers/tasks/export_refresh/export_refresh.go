package export_refresh

import (
	"context"
	"time"

	"parceltrack/pkg/logger"
)

type Service interface {
	RefreshDeliveries(ctx context.Context) error
	RefreshUsers(ctx context.Context) error
}

// ExportRefresh периодически переобновляет файлы выгрузки. Основной путь -
// обновление после каждой мутации; фоновая задача восстанавливает файлы,
// если процесс упал между коммитом и записью.
type ExportRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewExportRefresh(log logger.Logger, service Service, interval time.Duration) *ExportRefresh {
	return &ExportRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (e *ExportRefresh) TTL() time.Duration {
	return e.interval
}

func (e *ExportRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	if err := e.service.RefreshDeliveries(ctxWithTimeout); err != nil {
		return err
	}
	return e.service.RefreshUsers(ctxWithTimeout)
}

func (e *ExportRefresh) Info() string {
	return "export refresh"
}
