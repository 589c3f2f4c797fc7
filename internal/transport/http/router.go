package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Phil12992/Casino2.0/internal/app/casino"
	"github.com/Phil12992/Casino2.0/internal/config"
	"github.com/Phil12992/Casino2.0/internal/game"
	"github.com/Phil12992/Casino2.0/internal/store"
)

func NewRouter(st *store.Store, cfg config.ServerConfig) *chi.Mux {
	svc := casino.NewService(st, game.SystemRand(), cfg)
	return NewRouterWithService(svc, st, cfg)
}

// NewRouterWithService wires the routes around an already built service.
// Tests use it to substitute storage.
func NewRouterWithService(svc *casino.Service, db pinger, cfg config.ServerConfig) *chi.Mux {
	h := NewCasinoHandlers(svc, db, cfg)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", h.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/login", h.Login())
		r.Post("/play", h.Play())
		r.Get("/balance", h.Balance())
		r.Get("/leaderboard", h.Leaderboard())
		r.Get("/plays/recent", h.RecentPlays())
		r.Post("/topup", h.TopUp())
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
