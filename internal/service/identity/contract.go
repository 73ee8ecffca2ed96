//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test
package identity

import (
	"context"

	"parceltrack/internal/entities"
)

type AccountRepository interface {
	GetByCredentials(ctx context.Context, role entities.Role, username, password string) (*entities.Account, error)
	NextID(ctx context.Context, role entities.Role) (int64, error)
	Create(ctx context.Context, role entities.Role, accountEntity entities.Account) error
}

type Exporter interface {
	RefreshUsers(ctx context.Context) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
