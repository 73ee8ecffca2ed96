//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"parceltrack/internal/entities"
)

type ShipmentRepository interface {
	CreateParcel(ctx context.Context, parcelEntity entities.Parcel) error
	CreateDelivery(ctx context.Context, createEntity entities.ShipmentCreate) error
	CreateNotification(ctx context.Context, parcelID int64, message string) error
	UpdateStatus(ctx context.Context, parcelID int64, status string) error
	DeleteCascade(ctx context.Context, parcelID int64) error
	DeleteCascadeByUser(ctx context.Context, userID int64) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	GetView(ctx context.Context, parcelID int64) (*entities.ShipmentView, error)
	FindViewByRecipient(ctx context.Context, substring string) (*entities.ShipmentView, error)
	ListViews(ctx context.Context) ([]entities.ShipmentView, error)
}

type AccountRepository interface {
	Delete(ctx context.Context, role entities.Role, id int64) error
}

type Exporter interface {
	RefreshDeliveries(ctx context.Context) error
	RefreshUsers(ctx context.Context) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
