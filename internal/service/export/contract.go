package export

import (
	"context"

	"parceltrack/internal/entities"
)

type ShipmentSource interface {
	ListViews(ctx context.Context) ([]entities.ShipmentView, error)
}

type AccountSource interface {
	List(ctx context.Context, role entities.Role) ([]entities.Account, error)
}
