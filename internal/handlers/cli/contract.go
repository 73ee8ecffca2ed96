//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cli_test
package cli

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type sessionLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type IdentityService interface {
	Authenticate(ctx context.Context, username, password string) (*entities.Identity, error)
	Register(ctx context.Context, username, password string, role entities.Role) (*entities.Identity, error)
}

type TrackingService interface {
	AddParcel(ctx context.Context, createEntity entities.ShipmentCreate) error
	UpdateStatus(ctx context.Context, parcelID int64, status string) error
	DeleteParcel(ctx context.Context, parcelID int64) error
	HasDependents(ctx context.Context, userID int64) (int64, error)
	DeleteUser(ctx context.Context, userID int64) error
	AttachNotification(ctx context.Context, parcelID int64, message string) error
	FindByParcelID(ctx context.Context, parcelID int64) (*entities.ShipmentView, error)
	FindByRecipient(ctx context.Context, substring string) (*entities.ShipmentView, error)
	ListShipments(ctx context.Context) ([]entities.ShipmentView, error)
}
