package game

import (
	"fmt"
	"strings"
)

var slotSymbols = [5]string{"Cherry", "Lemon", "Bell", "Star", "Seven"}

var slotTripleMultiplier = map[string]int64{
	"Cherry": 10,
	"Lemon":  5,
	"Bell":   8,
	"Star":   12,
	"Seven":  25,
}

// Slots spins three independent reels. Three of a kind pays the symbol's
// multiplier, any pair pays double, anything else loses the bet.
func Slots(rng Rand, bet int64) (Result, error) {
	if bet < 1 {
		return Result{}, ErrInvalidBet
	}
	var reels [3]string
	for i := range reels {
		reels[i] = slotSymbols[rng.IntN(len(slotSymbols))]
	}
	res := Result{
		Game:        KindSlots,
		Description: strings.Join(reels[:], " | "),
	}
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		res.Win = true
		res.Delta = bet * slotTripleMultiplier[reels[0]]
		res.Description = fmt.Sprintf("%s — %s x3", res.Description, reels[0])
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		res.Win = true
		res.Delta = bet * 2
	default:
		res.Delta = -bet
	}
	return res, nil
}
