package identity

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/entities"
)

type Identity struct {
	repository AccountRepository
	exporter   Exporter
	txManager  TxManager
}

func New(repository AccountRepository, exporter Exporter, txManager TxManager) *Identity {
	return &Identity{
		repository: repository,
		exporter:   exporter,
		txManager:  txManager,
	}
}

// Authenticate проверяет сначала таблицу пользователей, затем администраторов,
// побеждает первое совпадение. Обе роли одновременно не возвращаются никогда,
// даже если пары логин/пароль совпали в обеих таблицах.
func (s *Identity) Authenticate(ctx context.Context, username, password string) (*entities.Identity, error) {
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !isValidPassword(password) {
		return nil, ErrInvalidPassword
	}

	for _, role := range []entities.Role{entities.RoleUser, entities.RoleAdministrator} {
		accountEntity, err := s.repository.GetByCredentials(ctx, role, username, password)
		if err != nil {
			if errors.Is(err, ErrIdentityNotFound) {
				continue
			}
			return nil, fmt.Errorf("authenticate: %w", err)
		}

		return &entities.Identity{
			ID:   accountEntity.ID,
			Role: role,
		}, nil
	}

	return nil, ErrIdentityNotFound
}

// Register создает учетную запись с id = max+1 (1 на пустой таблице).
// Уникальность username намеренно не проверяется: дубликаты допустимы
// как внутри роли, так и между ролями.
func (s *Identity) Register(ctx context.Context, username, password string, role entities.Role) (*entities.Identity, error) {
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !isValidPassword(password) {
		return nil, ErrInvalidPassword
	}
	if !isValidRole(role) {
		return nil, ErrInvalidRole
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		nextID, err := s.repository.NextID(ctx, role)
		if err != nil {
			return fmt.Errorf("allocate id: %w", err)
		}

		err = s.repository.Create(ctx, role, entities.Account{
			ID:       nextID,
			Username: username,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		id = nextID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// выгрузка пользователей обновляется после коммита регистрации
	if role == entities.RoleUser {
		if err := s.exporter.RefreshUsers(ctx); err != nil {
			return nil, fmt.Errorf("refresh users export: %w", err)
		}
	}

	return &entities.Identity{
		ID:   id,
		Role: role,
	}, nil
}
