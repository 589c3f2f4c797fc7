// dumb-gambler hammers a running casino server with random plays. It is a
// smoke-test client, not part of the server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Phil12992/Casino2.0/internal/store"
)

type playRequest struct {
	Username string `json:"username"`
	Game     string `json:"game"`
	Bet      int64  `json:"bet"`
	Guess    int    `json:"guess,omitempty"`
	Pick     string `json:"pick,omitempty"`
}

type playResponse struct {
	Game       string `json:"game"`
	Outcome    string `json:"outcome"`
	Delta      int64  `json:"delta"`
	NewBalance int64  `json:"new_balance"`
	Error      string `json:"error"`
}

var games = []string{"dice", "coin", "slots", "bombenzahl", "claw"}

func main() {
	baseURL := getenv("BASE_URL", "http://localhost:8080")
	username := getenv("USERNAME", "gambler-"+store.NewID())
	maxBet := getenvInt("MAX_BET", 50)
	interval := time.Duration(getenvInt("INTERVAL_MS", 500)) * time.Millisecond

	client := &http.Client{Timeout: 5 * time.Second}

	if err := post(client, baseURL+"/api/login", map[string]any{"username": username}, nil); err != nil {
		log.Fatal(err)
	}
	log.Printf("playing as %s against %s", username, baseURL)

	for {
		req := playRequest{
			Username: username,
			Game:     games[rand.IntN(len(games))],
			Bet:      1 + rand.Int64N(int64(maxBet)),
		}
		switch req.Game {
		case "dice":
			req.Guess = 1 + rand.IntN(6)
		case "bombenzahl":
			req.Guess = 1 + rand.IntN(20)
		case "coin":
			if rand.IntN(2) == 0 {
				req.Pick = "heads"
			} else {
				req.Pick = "tails"
			}
		}

		var resp playResponse
		if err := post(client, baseURL+"/api/play", req, &resp); err != nil {
			log.Printf("play failed: %v", err)
			time.Sleep(interval)
			continue
		}
		if resp.Error == "insufficient_funds" {
			log.Printf("broke, topping up")
			if err := post(client, baseURL+"/api/topup", map[string]any{"username": username}, nil); err != nil {
				log.Printf("topup failed: %v", err)
			}
			continue
		}
		if resp.Error != "" {
			log.Printf("play rejected: %s", resp.Error)
		} else {
			log.Printf("%s: %s (%+d, balance %d)", resp.Game, resp.Outcome, resp.Delta, resp.NewBalance)
		}
		time.Sleep(interval)
	}
}

func post(client *http.Client, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%s: status %d", url, resp.StatusCode)
		}
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
