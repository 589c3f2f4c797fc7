package game

import "fmt"

type clawPrize struct {
	name  string
	value int64
	// upTo is the exclusive cumulative upper bound of this prize's band
	// within [0,1). Band widths follow the prize probabilities 0.5, 0.3,
	// 0.15, 0.045, 0.005; the topmost bound stays below 1 so a draw in the
	// rounding sliver at the very top misses instead of erroring.
	upTo float64
}

var clawPrizes = []clawPrize{
	{name: "Nothing", value: 0, upTo: 0.5},
	{name: "Small Prize", value: 50, upTo: 0.8},
	{name: "Medium Prize", value: 150, upTo: 0.95},
	{name: "Large Prize", value: 500, upTo: 0.995},
	{name: "Jackpot", value: 2000, upTo: 0.99999},
}

// Claw takes one weighted grab at the prize table. Every outcome applies
// prize value minus bet, so even a won zero-value prize costs the bet.
func Claw(rng Rand, bet int64) (Result, error) {
	if bet < 1 {
		return Result{}, ErrInvalidBet
	}
	prize := pickPrize(rng.Float64())
	res := Result{
		Game:        KindClaw,
		Description: fmt.Sprintf("grabbed %s", prize.name),
		Delta:       prize.value - bet,
		Win:         prize.value > 0,
	}
	if prize.value > 0 {
		res.Description = fmt.Sprintf("grabbed %s (%d)", prize.name, prize.value)
	}
	return res, nil
}

func pickPrize(draw float64) clawPrize {
	for _, p := range clawPrizes {
		if draw < p.upTo {
			return p
		}
	}
	return clawPrizes[0]
}
