package store

import "time"

type Player struct {
	Username  string
	Balance   int64
	CreatedAt time.Time
}

// PlayRecord is one immutable row of the play log. Delta is the net change
// applied to the balance, which per game rules is not always payout minus
// bet.
type PlayRecord struct {
	ID       int64
	Username string
	Game     string
	Bet      int64
	Delta    int64
	PlayedAt time.Time
}

type LeaderboardEntry struct {
	Username string
	Balance  int64
}

// TopUpEntry audits a manual point exchange. Top-ups never appear in the
// play log.
type TopUpEntry struct {
	ID        string
	Username  string
	Amount    int64
	CreatedAt time.Time
}
