// Package postgres keeps save snapshots in a PostgreSQL table through pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/wonders/internal/config"
)

// applicationName tags every connection in pg_stat_activity.
const applicationName = "wonders"

// Pool is the connection pool shared by the save queries.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool dials the save database described by cfg.
//
// Postcondition: the database answered a ping, or no connection is left open.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres: reading settings for %s: %w", cfg.Name, err)
	}
	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = cfg.MinConns
	pcfg.MaxConnLifetime = cfg.MaxConnLifetime
	pcfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: opening pool for %s: %w", cfg.Name, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: %s:%d/%s unreachable: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}
	return &Pool{pool: pool}, nil
}

// Ping reports whether the save database answers within timeout.
func (p *Pool) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close drops every pooled connection. Saves fail afterwards.
func (p *Pool) Close() {
	p.pool.Close()
}

// Conn is the pgx pool the save queries run on.
func (p *Pool) Conn() *pgxpool.Pool {
	return p.pool
}
