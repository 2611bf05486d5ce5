package handlers

import "net/http"

// NewRouter wires the API routes. The metrics handler is optional so
// tests can run without a registry.
func NewRouter(mw *Middleware, auth *AuthHandler, game *GameHandler, stats *StatsHandler, health *HealthHandler, metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", mw.RateLimit(auth.Register))
	mux.HandleFunc("POST /api/login", mw.RateLimit(auth.Login))

	mux.HandleFunc("POST /api/guess", mw.RateLimit(mw.RequireAuth(game.SubmitGuess)))
	mux.HandleFunc("GET /api/guesses", mw.RequireAuth(game.GetGuesses))

	mux.HandleFunc("GET /api/stats", mw.RequireAuth(stats.GetStats))
	mux.HandleFunc("GET /api/leaderboard", stats.GetLeaderboard)

	if health != nil {
		mux.HandleFunc("GET /api/healthz", health.Healthz)
	}
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	return mw.Instrument(mux)
}
