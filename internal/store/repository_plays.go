package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	playsTable  = "plays"
	colPlayID   = "id"
	colGame     = "game"
	colBet      = "bet"
	colDelta    = "delta"
	colPlayedAt = "played_at"
)

// ApplyPlay applies one play in a single transaction: the player's balance
// takes the delta and the play log gains a row with a store-assigned id.
// The balance row is locked first so simultaneous plays by the same player
// serialize instead of losing updates. An unknown username leaves no balance
// to touch; the play row is still appended and the returned balance is 0.
// Deltas may drive the balance negative and are not clamped.
func (s *Store) ApplyPlay(ctx context.Context, username, game string, bet, delta int64) (int64, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	lock := psql.Select(colBalance).
		From(playersTable).
		Where(sq.Eq{colUsername: username}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := lock.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	known := true
	err = tx.QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}
		known = false
	}

	newBalance := int64(0)
	if known {
		newBalance = balance + delta
		update := psql.Update(playersTable).
			Set(colBalance, newBalance).
			Where(sq.Eq{colUsername: username})

		sqlStr, args, err = update.ToSql()
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			return 0, err
		}
	}

	insert := psql.Insert(playsTable).
		Columns(colUsername, colGame, colBet, colDelta).
		Values(username, game, bet, delta)

	sqlStr, args, err = insert.ToSql()
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

// RecentPlays returns the newest plays first, ordered by the store-assigned
// id. A non-positive limit yields nothing.
func (s *Store) RecentPlays(ctx context.Context, limit int) ([]PlayRecord, error) {
	if limit <= 0 {
		return []PlayRecord{}, nil
	}

	query := psql.Select(colPlayID, colUsername, colGame, colBet, colDelta, colPlayedAt).
		From(playsTable).
		OrderBy(colPlayID + " DESC").
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

	out := make([]PlayRecord, 0, limit)
	for rows.Next() {
		var p PlayRecord
		if err := rows.Scan(&p.ID, &p.Username, &p.Game, &p.Bet, &p.Delta, &p.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SumDeltas totals the play-log deltas for one player, for checking the
// ledger invariant against the live balance.
func (s *Store) SumDeltas(ctx context.Context, username string) (int64, error) {
	query := psql.Select("COALESCE(SUM(" + colDelta + "), 0)").
		From(playsTable).
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
