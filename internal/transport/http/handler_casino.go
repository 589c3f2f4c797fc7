package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Phil12992/Casino2.0/internal/app/casino"
	"github.com/Phil12992/Casino2.0/internal/config"
	"github.com/Phil12992/Casino2.0/internal/game"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type CasinoHandlers struct {
	svc *casino.Service
	db  pinger
	cfg config.ServerConfig
}

func NewCasinoHandlers(svc *casino.Service, db pinger, cfg config.ServerConfig) *CasinoHandlers {
	return &CasinoHandlers{svc: svc, db: db, cfg: cfg}
}

func (h *CasinoHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func (h *CasinoHandlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body casino.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Login(r.Context(), body.Username)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *CasinoHandlers) Play() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body casino.PlayRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Play(r.Context(), body)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *CasinoHandlers) Balance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Balance(r.Context(), r.URL.Query().Get("username"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *CasinoHandlers) Leaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := ParseLimit(r, h.cfg.ListDefault)
		items, err := h.svc.Leaderboard(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit})
	}
}

func (h *CasinoHandlers) RecentPlays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := ParseLimit(r, h.cfg.ListDefault)
		items, err := h.svc.RecentPlays(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit})
	}
}

func (h *CasinoHandlers) TopUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body casino.TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.TopUp(r.Context(), body.Username, body.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, casino.ErrInvalidUsername):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_username")
	case errors.Is(err, game.ErrUnknownGame):
		WriteHTTPError(w, http.StatusBadRequest, "unknown_game")
	case errors.Is(err, game.ErrInvalidBet):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_bet")
	case errors.Is(err, game.ErrInvalidPick):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_pick")
	case errors.Is(err, casino.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, casino.ErrInsufficientFunds):
		WriteHTTPError(w, http.StatusConflict, "insufficient_funds")
	case errors.Is(err, casino.ErrStorageUnavailable):
		WriteHTTPError(w, http.StatusServiceUnavailable, "storage_unavailable")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
