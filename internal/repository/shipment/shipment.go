package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/tracking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const viewQuery = `
	SELECT
		d.parcel_id,
		p.weight_kg,
		p.description,
		p.parcel_type,
		d.user_id,
		u.username,
		d.admin_id,
		a.username,
		d.recipient_name,
		d.status,
		d.created_at,
		n.message,
		n.sent_at
	FROM deliveries d
	JOIN parcels p ON p.id = d.parcel_id
	JOIN users u ON u.id = d.user_id
	JOIN admins a ON a.id = d.admin_id
	LEFT JOIN notifications n ON n.parcel_id = d.parcel_id
`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateParcel(ctx context.Context, parcelEntity entities.Parcel) error {
	query := `
		INSERT INTO parcels (id, weight_kg, description, parcel_type)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		parcelEntity.ID,
		parcelEntity.WeightKg,
		parcelEntity.Description,
		parcelEntity.Type,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return tracking.ErrDuplicateParcel
		}
		return fmt.Errorf("unexpected shipment repository create parcel error: %w", err)
	}

	return nil
}

// CreateDelivery вставляет доставку для уже вставленной посылки.
// created_at по умолчанию проставляет хранилище.
func (r *Repository) CreateDelivery(ctx context.Context, createEntity entities.ShipmentCreate) error {
	columns := []string{"parcel_id", "user_id", "admin_id", "recipient_name", "status"}
	values := []interface{}{
		createEntity.Parcel.ID,
		createEntity.UserID,
		createEntity.AdminID,
		createEntity.RecipientName,
		createEntity.Status,
	}
	if createEntity.CreatedAt != nil {
		columns = append(columns, "created_at")
		values = append(values, *createEntity.CreatedAt)
	}

	query, args, err := qb.
		Insert("deliveries").
		Columns(columns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository create delivery error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return tracking.ErrUnknownReference
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return tracking.ErrDuplicateParcel
		}
		return fmt.Errorf("unexpected shipment repository create delivery error: %w", err)
	}

	return nil
}

func (r *Repository) CreateNotification(ctx context.Context, parcelID int64, message string) error {
	query := `
		INSERT INTO notifications (parcel_id, message)
		VALUES ($1, $2)
	`

	_, err := r.querier.Exec(ctx, query, parcelID, message)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return tracking.ErrDuplicateNotification
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return tracking.ErrParcelNotFound
		}
		return fmt.Errorf("unexpected shipment repository create notification error: %w", err)
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, parcelID int64, status string) error {
	query, args, err := qb.
		Update("deliveries").
		Set("status", status).
		Where(sq.Eq{"parcel_id": parcelID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tracking.ErrParcelNotFound
	}

	return nil
}

// DeleteCascade удаляет в порядке зависимостей:
// notification -> delivery -> parcel. Атомарность обеспечивает
// объемлющая транзакция сервиса.
func (r *Repository) DeleteCascade(ctx context.Context, parcelID int64) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM notifications WHERE parcel_id = $1`, parcelID)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete notifications error: %w", err)
	}

	result, err := r.querier.Exec(ctx, `DELETE FROM deliveries WHERE parcel_id = $1`, parcelID)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete delivery error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return tracking.ErrParcelNotFound
	}

	_, err = r.querier.Exec(ctx, `DELETE FROM parcels WHERE id = $1`, parcelID)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete parcel error: %w", err)
	}

	return nil
}

// DeleteCascadeByUser снимает все доставки пользователя тем же каскадом,
// что и DeleteCascade, но на множестве строк. Возвращает число удаленных доставок.
func (r *Repository) DeleteCascadeByUser(ctx context.Context, userID int64) (int64, error) {
	// посылки пользователя фиксируются до удаления доставок,
	// после него связь user -> parcel уже не восстановить
	rows, err := r.querier.Query(ctx, `SELECT parcel_id FROM deliveries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository select user parcels error: %w", err)
	}
	parcelIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository select user parcels error: %w", err)
	}

	if len(parcelIDs) == 0 {
		return 0, nil
	}

	_, err = r.querier.Exec(ctx, `DELETE FROM notifications WHERE parcel_id = ANY($1)`, parcelIDs)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository delete user notifications error: %w", err)
	}

	result, err := r.querier.Exec(ctx, `DELETE FROM deliveries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository delete user deliveries error: %w", err)
	}
	deleted := result.RowsAffected()

	_, err = r.querier.Exec(ctx, `DELETE FROM parcels WHERE id = ANY($1)`, parcelIDs)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository delete user parcels error: %w", err)
	}

	return deleted, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE user_id = $1
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count by user error: %w", err)
	}

	return count, nil
}

func (r *Repository) GetView(ctx context.Context, parcelID int64) (*entities.ShipmentView, error) {
	query := viewQuery + ` WHERE d.parcel_id = $1`

	var viewDB ShipmentViewDB
	err := r.querier.QueryRow(ctx, query, parcelID).Scan(
		&viewDB.ParcelID,
		&viewDB.WeightKg,
		&viewDB.Description,
		&viewDB.ParcelType,
		&viewDB.UserID,
		&viewDB.Sender,
		&viewDB.AdminID,
		&viewDB.Admin,
		&viewDB.RecipientName,
		&viewDB.Status,
		&viewDB.CreatedAt,
		&viewDB.Message,
		&viewDB.SentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get view error: %w", err)
	}

	return ToDomainView(&viewDB), nil
}

// FindViewByRecipient инфиксный поиск по имени получателя.
// Контракт однострочный: возвращается только первое совпадение по parcel_id.
func (r *Repository) FindViewByRecipient(ctx context.Context, substring string) (*entities.ShipmentView, error) {
	query := viewQuery + `
		WHERE d.recipient_name LIKE '%' || $1 || '%'
		ORDER BY d.parcel_id
		LIMIT 1
	`

	var viewDB ShipmentViewDB
	err := r.querier.QueryRow(ctx, query, substring).Scan(
		&viewDB.ParcelID,
		&viewDB.WeightKg,
		&viewDB.Description,
		&viewDB.ParcelType,
		&viewDB.UserID,
		&viewDB.Sender,
		&viewDB.AdminID,
		&viewDB.Admin,
		&viewDB.RecipientName,
		&viewDB.Status,
		&viewDB.CreatedAt,
		&viewDB.Message,
		&viewDB.SentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository find view error: %w", err)
	}

	return ToDomainView(&viewDB), nil
}

func (r *Repository) ListViews(ctx context.Context) ([]entities.ShipmentView, error) {
	query := viewQuery + ` ORDER BY d.parcel_id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list views error: %w", err)
	}
	defer rows.Close()

	viewModels := make([]ShipmentViewDB, 0, 8)
	for rows.Next() {
		var viewDB ShipmentViewDB
		err := rows.Scan(
			&viewDB.ParcelID,
			&viewDB.WeightKg,
			&viewDB.Description,
			&viewDB.ParcelType,
			&viewDB.UserID,
			&viewDB.Sender,
			&viewDB.AdminID,
			&viewDB.Admin,
			&viewDB.RecipientName,
			&viewDB.Status,
			&viewDB.CreatedAt,
			&viewDB.Message,
			&viewDB.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list views error: %w", err)
		}
		viewModels = append(viewModels, viewDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list views error: %w", err)
	}

	return ToDomainViewList(viewModels), nil
}
