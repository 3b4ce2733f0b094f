package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnConfig holds the discrete connection fields the environment provides.
type ConnConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c ConnConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name)
}

func NewPostgresConnection(cc ConnConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cc.URL())
	if err != nil {
		return nil, err
	}

	// Simple protocol keeps the pool safe behind transaction-mode PgBouncer
	// (prevents "prepared statement already exists" errors).
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Database connection established successfully")
	return pool, nil
}
