package game

import "fmt"

const diceWinMultiplier = 4

// Dice bets on the face of a single die. A hit pays out four times the bet,
// recorded as the full payout, not payout minus bet.
func Dice(rng Rand, bet int64, guess int) (Result, error) {
	if bet < 1 {
		return Result{}, ErrInvalidBet
	}
	if guess < 1 || guess > 6 {
		return Result{}, ErrInvalidPick
	}
	rolled := rng.IntN(6) + 1
	res := Result{Game: KindDice, Description: fmt.Sprintf("rolled %d", rolled)}
	if rolled == guess {
		res.Win = true
		res.Delta = bet * diceWinMultiplier
	} else {
		res.Delta = -bet
	}
	return res, nil
}
