package schema

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"parceltrack/pkg/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Init приводит схему к актуальной версии и один раз наполняет
// демонстрационными данными. Безопасен при каждом старте процесса:
// повторный запуск не пересоздает таблицы и не теряет данные.
func Init(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("schema is up to date")

	if err := seed(ctx, log, pool); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// seed выполняется только на пустом хранилище, иначе при каждом старте
// появлялись бы дубликаты.
func seed(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	var userCount int64
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	if userCount > 0 {
		return nil
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password) VALUES (1, 'ivan', 'pass123');
	`)
	if err != nil {
		return fmt.Errorf("insert seed user: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO admins (id, username, password) VALUES (1, 'admin1', 'adminpass');
	`)
	if err != nil {
		return fmt.Errorf("insert seed admin: %w", err)
	}

	log.Info("seeded initial accounts",
		logger.NewField("users", 1),
		logger.NewField("admins", 1),
	)
	return nil
}
