// db/postgres.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"

	logger "github.com/kada-connect/api/logging"
)

var PgPool *pgxpool.Pool

// InitPostgres creates and verifies the pgx connection pool.
func InitPostgres() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, viper.GetString("postgres.url"))
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	PgPool = pool
	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if PgPool != nil {
		PgPool.Close()
	}
}
