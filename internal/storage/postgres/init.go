package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/swetha221234/smart-rural-connect/internal/config"
	"github.com/swetha221234/smart-rural-connect/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool      *pgxpool.Pool
	Complaint ComplaintRepository
}

// schema is applied at startup; the table is the single source of truth for
// complaint records.
const schema = `
	CREATE TABLE IF NOT EXISTS complaints (
		id          text PRIMARY KEY,
		name        text NOT NULL,
		description text NOT NULL,
		category    text NOT NULL,
		priority    text NOT NULL,
		status      text NOT NULL,
		latitude    double precision NOT NULL,
		longitude   double precision NOT NULL,
		created_at  timestamptz NOT NULL,
		resolved_at timestamptz
	)
`

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.String("database", cfg.Postgres.Database))

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error("Failed to apply schema", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Schema", err)
	}
	logger.Info("Connected to Postgres successfully")

	pg := &Postgres{
		Pool:      pool,
		Complaint: NewComplaintRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}
