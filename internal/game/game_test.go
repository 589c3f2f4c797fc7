package game

import (
	"errors"
	"testing"
)

func TestPlayDispatch(t *testing.T) {
	rng := &stubRand{ints: []int{2}}
	res, err := Play(rng, KindDice, 10, Params{Guess: 3})
	if err != nil {
		t.Fatalf("Play(dice) error = %v", err)
	}
	if res.Game != KindDice || res.Delta != 40 {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := Play(rng, Kind("roulette"), 10, Params{}); !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("unknown game error = %v, want ErrUnknownGame", err)
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindDice, KindCoin, KindSlots, KindBombenzahl, KindClaw} {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	if Kind("poker").Valid() {
		t.Fatal("poker should not be valid")
	}
}
