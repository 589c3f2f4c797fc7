package store

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidUsername = errors.New("invalid username")

// psql builds queries with Postgres placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store wraps DB access. It is the sole owner of balances and play history.
type Store struct {
	Pool *pgxpool.Pool
}

func New(dsn string) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Pool.Ping(ctx)
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS players (
    username   TEXT PRIMARY KEY,
    balance    BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS plays (
    id        BIGSERIAL PRIMARY KEY,
    username  TEXT NOT NULL,
    game      TEXT NOT NULL,
    bet       BIGINT NOT NULL,
    delta     BIGINT NOT NULL,
    played_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS plays_username_idx ON plays (username);

CREATE TABLE IF NOT EXISTS topups (
    id         TEXT PRIMARY KEY,
    username   TEXT NOT NULL,
    amount     BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Bootstrap creates the schema if it does not exist yet. Plays reference
// players by username without a foreign key; orphaned references are
// tolerated on purpose.
func (s *Store) Bootstrap(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schemaDDL)
	return err
}
