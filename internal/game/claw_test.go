package game

import "testing"

func TestClawPrizeBands(t *testing.T) {
	tests := []struct {
		name      string
		draw      float64
		bet       int64
		wantDelta int64
		wantWin   bool
	}{
		{name: "bottom of nothing band", draw: 0.0, bet: 25, wantDelta: -25, wantWin: false},
		{name: "top of nothing band", draw: 0.49999, bet: 25, wantDelta: -25, wantWin: false},
		{name: "small prize", draw: 0.5, bet: 25, wantDelta: 25, wantWin: true},
		{name: "medium prize", draw: 0.8, bet: 25, wantDelta: 125, wantWin: true},
		{name: "large prize", draw: 0.95, bet: 25, wantDelta: 475, wantWin: true},
		{name: "jackpot", draw: 0.995, bet: 25, wantDelta: 1975, wantWin: true},
		// Rounding sliver above the last band falls back to Nothing.
		{name: "draw beyond all bands", draw: 0.99999, bet: 25, wantDelta: -25, wantWin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Claw(&stubRand{floats: []float64{tt.draw}}, tt.bet)
			if err != nil {
				t.Fatalf("Claw() error = %v", err)
			}
			if res.Delta != tt.wantDelta {
				t.Fatalf("delta = %d, want %d", res.Delta, tt.wantDelta)
			}
			if res.Win != tt.wantWin {
				t.Fatalf("win = %v, want %v", res.Win, tt.wantWin)
			}
		})
	}
}

func TestClawZeroPrizeStillCostsBet(t *testing.T) {
	res, err := Claw(&stubRand{floats: []float64{0.1}}, 40)
	if err != nil {
		t.Fatalf("Claw() error = %v", err)
	}
	if res.Delta != -40 {
		t.Fatalf("delta = %d, want -40", res.Delta)
	}
	if res.Description != "grabbed Nothing" {
		t.Fatalf("description = %q", res.Description)
	}
}
