package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
)

const (
	postgresMaxOpenConns    = 5
	postgresConnMaxIdleTime = time.Second
	connectTimeout          = 5 * time.Second
)

// NewConnectPostgres opens a pgx-backed pool for cfg and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxOpenConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	// ping database
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").
		Str("host", cfg.Host).
		Str("dbname", cfg.DBName).
		Msg("connected to database successfully")

	return NewDB(conn, Postgres, log), nil
}
