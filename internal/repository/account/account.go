package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/identity"
	"parceltrack/internal/service/tracking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository работает с двумя одинаковыми по форме таблицами:
// users и admins. Таблица выбирается ролью.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func tableFor(role entities.Role) (string, error) {
	switch role {
	case entities.RoleUser:
		return "users", nil
	case entities.RoleAdministrator:
		return "admins", nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

func (r *Repository) GetByCredentials(ctx context.Context, role entities.Role, username, password string) (*entities.Account, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getbycredentials error: %w", err)
	}

	query, args, err := qb.
		Select("id", "username", "password").
		From(table).
		Where(sq.Eq{"username": username, "password": password}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getbycredentials error: %w", err)
	}

	var accountDB AccountDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&accountDB.ID,
			&accountDB.Username,
			&accountDB.Password,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrIdentityNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbycredentials error: %w", err)
	}

	return ToDomain(&accountDB), nil
}

// NextID выделяет следующий id: max+1, либо 1 на пустой таблице.
// Вызывается внутри сериализуемой транзакции вместе с Create.
func (r *Repository) NextID(ctx context.Context, role entities.Role) (int64, error) {
	table, err := tableFor(role)
	if err != nil {
		return 0, fmt.Errorf("unexpected account repository nextid error: %w", err)
	}

	query := fmt.Sprintf(`SELECT COALESCE(MAX(id), 0) + 1 FROM %s`, table)

	var id int64
	err = r.querier.QueryRow(ctx, query).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected account repository nextid error: %w", err)
	}

	return id, nil
}

func (r *Repository) Create(ctx context.Context, role entities.Role, accountEntity entities.Account) error {
	table, err := tableFor(role)
	if err != nil {
		return fmt.Errorf("unexpected account repository create error: %w", err)
	}

	query, args, err := qb.
		Insert(table).
		Columns("id", "username", "password").
		Values(accountEntity.ID, accountEntity.Username, accountEntity.Password).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected account repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, role entities.Role, id int64) (*entities.Account, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	query, args, err := qb.
		Select("id", "username", "password").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	var accountDB AccountDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&accountDB.ID,
			&accountDB.Username,
			&accountDB.Password,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrIdentityNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(&accountDB), nil
}

func (r *Repository) Delete(ctx context.Context, role entities.Role, id int64) error {
	table, err := tableFor(role)
	if err != nil {
		return fmt.Errorf("unexpected account repository delete error: %w", err)
	}

	query, args, err := qb.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected account repository delete error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected account repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tracking.ErrUserNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, role entities.Role) ([]entities.Account, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list error: %w", err)
	}

	query, _, err := qb.
		Select("id", "username", "password").
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list error: %w", err)
	}
	defer rows.Close()

	accountModels := make([]AccountDB, 0, 8)
	for rows.Next() {
		var accountDB AccountDB
		err := rows.Scan(
			&accountDB.ID,
			&accountDB.Username,
			&accountDB.Password,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected account repository list error: %w", err)
		}
		accountModels = append(accountModels, accountDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list error: %w", err)
	}

	return ToDomainList(accountModels), nil
}
