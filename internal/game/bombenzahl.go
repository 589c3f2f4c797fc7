package game

import "fmt"

// Bombenzahl guesses a secret number in [1,20]. An exact hit pays ten times
// the bet; a miss within two refunds half the bet (integer division, so the
// refund floors toward zero); anything else loses the bet. Unlike dice and
// coin, the recorded delta is net of the bet.
func Bombenzahl(rng Rand, bet int64, guess int) (Result, error) {
	if bet < 1 {
		return Result{}, ErrInvalidBet
	}
	if guess < 1 || guess > 20 {
		return Result{}, ErrInvalidPick
	}
	secret := rng.IntN(20) + 1
	res := Result{Game: KindBombenzahl, Description: fmt.Sprintf("secret number was %d", secret)}
	diff := guess - secret
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		res.Win = true
		res.Delta = bet * 10
	case diff <= 2:
		res.Delta = -bet + bet/2
		res.Description += " — close miss, half refund"
	default:
		res.Delta = -bet
	}
	return res, nil
}
