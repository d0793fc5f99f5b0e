package db

import (
	"context"
	"database/sql"
	"time"

	"backend-wanderplan/internal/config"
	"backend-wanderplan/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/pressly/goose/v3"
)

var newPoolFn = pgxpool.New
var pingPoolFn = func(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

func ConnectPostgres(cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := newPoolFn(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	if err := pingPoolFn(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate applies the embedded SQL migrations. goose needs a *sql.DB, so it
// opens its own short-lived connection through the pgx stdlib driver.
func Migrate(cfg config.Config) error {
	conn, err := sql.Open("pgx", cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(conn, ".")
}
