package casino

import (
	"time"

	"github.com/Phil12992/Casino2.0/internal/game"
)

type LoginRequest struct {
	Username string `json:"username"`
}

type PlayerResponse struct {
	Username  string    `json:"username"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type PlayRequest struct {
	Username string    `json:"username"`
	Game     game.Kind `json:"game"`
	Bet      int64     `json:"bet"`
	Guess    int       `json:"guess,omitempty"`
	Pick     string    `json:"pick,omitempty"`
}

type PlayResponse struct {
	Game       string `json:"game"`
	Outcome    string `json:"outcome"`
	Win        bool   `json:"win"`
	Delta      int64  `json:"delta"`
	NewBalance int64  `json:"new_balance"`
}

type BalanceResponse struct {
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

type PlayEntry struct {
	Username string    `json:"username"`
	Game     string    `json:"game"`
	Bet      int64     `json:"bet"`
	Delta    int64     `json:"delta"`
	PlayedAt time.Time `json:"played_at"`
}

type TopUpRequest struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount,omitempty"`
}

type TopUpResponse struct {
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
	Amount   int64  `json:"amount"`
}
