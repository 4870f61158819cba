package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/job000/wedding2025-backend/internal/storage"
)

//go:embed schema.sql
var schema string

type Storage struct {
	DB *pgxpool.Pool
}

type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int
	ConnectTimeout time.Duration
}

func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// InitDB opens the pool, waits for the database to accept connections and
// applies the schema. Only this startup ping is retried.
func InitDB(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.ConnectTimeout
	err = backoff.RetryNotify(func() error {
		return dbpool.Ping(ctx)
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		log.Warnw("database not ready", "error", err, "retry_in", next)
	})
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := dbpool.Exec(ctx, schema); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Storage{DB: dbpool}, nil
}

func (s *Storage) Close() {
	s.DB.Close()
}

// mapErr translates driver errors into storage sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", storage.ErrDuplicate, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", storage.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

func affected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
