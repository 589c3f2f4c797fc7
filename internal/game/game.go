package game

import "errors"

var ErrUnknownGame = errors.New("unknown_game")
var ErrInvalidBet = errors.New("invalid_bet")
var ErrInvalidPick = errors.New("invalid_pick")

// Kind identifies one of the five games.
type Kind string

const (
	KindDice       Kind = "dice"
	KindCoin       Kind = "coin"
	KindSlots      Kind = "slots"
	KindBombenzahl Kind = "bombenzahl"
	KindClaw       Kind = "claw"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDice, KindCoin, KindSlots, KindBombenzahl, KindClaw:
		return true
	default:
		return false
	}
}

// Result is the outcome of a single play. Delta is the signed amount to
// apply to the player's balance, already net of the bet where the game's
// rules say so: dice and coin record the full gross payout on a win, while
// bombenzahl and claw record payout minus bet. The inconsistency is part of
// the payout contract and is kept as-is.
type Result struct {
	Game        Kind
	Description string
	Delta       int64
	Win         bool
}

// Params carries the per-game selection. Guess is used by dice (1-6) and
// bombenzahl (1-20); Pick by coin ("heads"/"tails"). Slots and claw take no
// selection.
type Params struct {
	Guess int
	Pick  string
}

// Play dispatches one round of the chosen game. It never touches storage.
func Play(rng Rand, kind Kind, bet int64, p Params) (Result, error) {
	switch kind {
	case KindDice:
		return Dice(rng, bet, p.Guess)
	case KindCoin:
		return Coin(rng, bet, p.Pick)
	case KindSlots:
		return Slots(rng, bet)
	case KindBombenzahl:
		return Bombenzahl(rng, bet, p.Guess)
	case KindClaw:
		return Claw(rng, bet)
	default:
		return Result{}, ErrUnknownGame
	}
}
