// Package casino holds the application service behind the public HTTP API.
// It glues the game engine to the ledger store and owns the funds check
// that the engine itself does not perform.
package casino

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Phil12992/Casino2.0/internal/config"
	"github.com/Phil12992/Casino2.0/internal/game"
	"github.com/Phil12992/Casino2.0/internal/store"
)

// Ledger is the slice of the store the service needs. *store.Store
// satisfies it; tests substitute an in-memory fake.
type Ledger interface {
	RegisterOrGet(ctx context.Context, username string, startingBalance int64) (*store.Player, error)
	GetBalance(ctx context.Context, username string) (int64, error)
	ApplyPlay(ctx context.Context, username, game string, bet, delta int64) (int64, error)
	TopUp(ctx context.Context, username string, amount int64) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardEntry, error)
	RecentPlays(ctx context.Context, limit int) ([]store.PlayRecord, error)
}

type Service struct {
	ledger Ledger
	rng    game.Rand
	cfg    config.ServerConfig
}

func NewService(ledger Ledger, rng game.Rand, cfg config.ServerConfig) *Service {
	return &Service{ledger: ledger, rng: rng, cfg: cfg}
}

// Login registers the username on first sight and returns the existing
// account otherwise. Registration is idempotent.
func (s *Service) Login(ctx context.Context, username string) (*PlayerResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	p, err := s.ledger.RegisterOrGet(ctx, username, s.cfg.StartingBalance)
	if err != nil {
		if errors.Is(err, store.ErrInvalidUsername) {
			return nil, ErrInvalidUsername
		}
		return nil, storageErr("register player", err)
	}
	return &PlayerResponse{Username: p.Username, Balance: p.Balance, CreatedAt: p.CreatedAt}, nil
}

// Play runs one round of the requested game. The bet must be covered by
// the player's current balance before the round is rolled; nothing is
// persisted when the check fails.
func (s *Service) Play(ctx context.Context, req PlayRequest) (*PlayResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if !req.Game.Valid() {
		return nil, fmt.Errorf("%w: %s", game.ErrUnknownGame, req.Game)
	}
	if req.Bet <= 0 {
		return nil, game.ErrInvalidBet
	}

	balance, err := s.ledger.GetBalance(ctx, username)
	if err != nil {
		return nil, storageErr("read balance", err)
	}
	if req.Bet > balance {
		return nil, ErrInsufficientFunds
	}

	res, err := game.Play(s.rng, req.Game, req.Bet, game.Params{Guess: req.Guess, Pick: req.Pick})
	if err != nil {
		return nil, err
	}

	newBalance, err := s.ledger.ApplyPlay(ctx, username, string(res.Game), req.Bet, res.Delta)
	if err != nil {
		return nil, storageErr("apply play", err)
	}

	log.Info().
		Str("username", username).
		Str("game", string(res.Game)).
		Int64("bet", req.Bet).
		Int64("delta", res.Delta).
		Int64("balance", newBalance).
		Msg("play settled")

	return &PlayResponse{
		Game:       string(res.Game),
		Outcome:    res.Description,
		Win:        res.Win,
		Delta:      res.Delta,
		NewBalance: newBalance,
	}, nil
}

// Balance never fails on an unknown username; it reports zero.
func (s *Service) Balance(ctx context.Context, username string) (*BalanceResponse, error) {
	username = strings.TrimSpace(username)
	balance, err := s.ledger.GetBalance(ctx, username)
	if err != nil {
		return nil, storageErr("read balance", err)
	}
	return &BalanceResponse{Username: username, Balance: balance}, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	rows, err := s.ledger.Leaderboard(ctx, s.clampLimit(limit))
	if err != nil {
		return nil, storageErr("read leaderboard", err)
	}
	out := make([]LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		out = append(out, LeaderboardEntry{Rank: i + 1, Username: r.Username, Balance: r.Balance})
	}
	return out, nil
}

func (s *Service) RecentPlays(ctx context.Context, limit int) ([]PlayEntry, error) {
	rows, err := s.ledger.RecentPlays(ctx, s.clampLimit(limit))
	if err != nil {
		return nil, storageErr("read recent plays", err)
	}
	out := make([]PlayEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, PlayEntry{
			Username: r.Username,
			Game:     r.Game,
			Bet:      r.Bet,
			Delta:    r.Delta,
			PlayedAt: r.PlayedAt,
		})
	}
	return out, nil
}

// TopUp credits the account unconditionally. A zero amount falls back to
// the configured default; the credit is audited but never enters the play
// log.
func (s *Service) TopUp(ctx context.Context, username string, amount int64) (*TopUpResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if amount == 0 {
		amount = s.cfg.DefaultTopUp
	}
	if amount < 0 {
		return nil, ErrInvalidRequest
	}
	balance, err := s.ledger.TopUp(ctx, username, amount)
	if err != nil {
		return nil, storageErr("top up", err)
	}
	log.Info().
		Str("username", username).
		Int64("amount", amount).
		Int64("balance", balance).
		Msg("balance topped up")
	return &TopUpResponse{Username: username, Balance: balance, Amount: amount}, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return limit
	}
	if limit > s.cfg.ListMax {
		return s.cfg.ListMax
	}
	return limit
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
