package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/ramadan/pkg/cleanup"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Connect opens one pool shared by all repositories and registers its shutdown.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func mustPing(conn PgConnection, repo string) {
	if err := conn.Ping(context.Background()); err != nil {
		log.Fatal("error while pinging connection for " + repo + ": " + err.Error())
	}
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
