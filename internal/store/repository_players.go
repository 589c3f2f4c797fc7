package store

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	playersTable = "players"
	colUsername  = "username"
	colBalance   = "balance"
	colCreatedAt = "created_at"

	topupsTable = "topups"
	colID       = "id"
	colAmount   = "amount"
)

// RegisterOrGet creates the player with the starting balance on first login
// and returns the existing row untouched on every later one. Usernames are
// trimmed and case-sensitive.
func (s *Store) RegisterOrGet(ctx context.Context, username string, startingBalance int64) (*Player, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	insert := psql.Insert(playersTable).
		Columns(colUsername, colBalance).
		Values(username, startingBalance).
		Suffix("ON CONFLICT (" + colUsername + ") DO NOTHING")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.Pool.Exec(ctx, sqlStr, args...); err != nil {
		return nil, err
	}

	return s.GetPlayer(ctx, username)
}

func (s *Store) GetPlayer(ctx context.Context, username string) (*Player, error) {
	query := psql.Select(colUsername, colBalance, colCreatedAt).
		From(playersTable).
		Where(sq.Eq{colUsername: username})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p Player
	err = s.Pool.QueryRow(ctx, sqlStr, args...).Scan(&p.Username, &p.Balance, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetBalance returns 0 for unknown players rather than an error. The
// presentation layer leans on that for pre-login display.
func (s *Store) GetBalance(ctx context.Context, username string) (int64, error) {
	query := psql.Select(colBalance).
		From(playersTable).
		Where(sq.Eq{colUsername: username})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = s.Pool.QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return balance, nil
}

// TopUp unconditionally credits the balance outside the play log; the only
// trace is a row in the topups audit table. Unknown usernames no-op on the
// balance but still leave the audit row.
func (s *Store) TopUp(ctx context.Context, username string, amount int64) (int64, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	update := psql.Update(playersTable).
		Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
		Where(sq.Eq{colUsername: username}).
		Suffix("RETURNING " + colBalance)

	sqlStr, args, err := update.ToSql()
	if err != nil {
		return 0, err
	}

	var newBalance int64
	err = tx.QueryRow(ctx, sqlStr, args...).Scan(&newBalance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	audit := psql.Insert(topupsTable).
		Columns(colID, colUsername, colAmount).
		Values(NewID(), username, amount)

	sqlStr, args, err = audit.ToSql()
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Leaderboard lists players by balance, highest first. Ties keep insertion
// order so repeated reads are stable. A non-positive limit yields nothing.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return []LeaderboardEntry{}, nil
	}

	query := psql.Select(colUsername, colBalance).
		From(playersTable).
		OrderBy(colBalance+" DESC", colCreatedAt+" ASC", colUsername+" ASC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.Pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Balance); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SumTopUps totals the audited top-ups for one player.
func (s *Store) SumTopUps(ctx context.Context, username string) (int64, error) {
	query := psql.Select("COALESCE(SUM(" + colAmount + "), 0)").
		From(topupsTable).
		Where(sq.Eq{colUsername: username})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var sum int64
	if err := s.Pool.QueryRow(ctx, sqlStr, args...).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}
