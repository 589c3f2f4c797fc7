package game

import "fmt"

const (
	PickHeads = "heads"
	PickTails = "tails"
)

var coinFaces = [2]string{PickHeads, PickTails}

// Coin bets on heads or tails. A hit pays out twice the bet, recorded as the
// full payout like dice.
func Coin(rng Rand, bet int64, pick string) (Result, error) {
	if bet < 1 {
		return Result{}, ErrInvalidBet
	}
	if pick != PickHeads && pick != PickTails {
		return Result{}, ErrInvalidPick
	}
	flipped := coinFaces[rng.IntN(2)]
	res := Result{Game: KindCoin, Description: fmt.Sprintf("flipped %s", flipped)}
	if flipped == pick {
		res.Win = true
		res.Delta = bet * 2
	} else {
		res.Delta = -bet
	}
	return res, nil
}
