package kv

import (
	"context"
	"errors"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/kv"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	selectValue = `SELECT value FROM kv WHERE key = $1`
	upsertValue = `
INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// PgxStore keeps values in the kv table. Values must be valid JSON.
type PgxStore struct {
	pool *pgxpool.Pool
}

func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxStore{pool: pool}
}

func (s *PgxStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, selectValue, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PgxStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, upsertValue, key, value)
	return err
}
