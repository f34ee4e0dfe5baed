package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wheelparty/fortunegame-go/internal/api/handler"
	"github.com/wheelparty/fortunegame-go/internal/api/middleware"
	"github.com/wheelparty/fortunegame-go/internal/services/engine"
	"github.com/wheelparty/fortunegame-go/internal/services/puzzle"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Engine  *engine.Engine
	Puzzles *puzzle.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.Engine)
	puzzleHandler := handler.NewPuzzleHandler(cfg.Puzzles)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game lifecycle
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/start", gameHandler.Start).Methods(http.MethodPost)

	// Turn actions
	api.HandleFunc("/games/{id}/spin", gameHandler.Spin).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/guess", gameHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/vowel", gameHandler.Vowel).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/solve", gameHandler.Solve).Methods(http.MethodPost)

	// Flow control
	api.HandleFunc("/games/{id}/advance-team", gameHandler.AdvanceTeam).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/advance-round", gameHandler.AdvanceRound).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/end-round", gameHandler.EndRound).Methods(http.MethodPost)

	// Scoring
	api.HandleFunc("/games/{id}/leaderboard", gameHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/summary", gameHandler.Summary).Methods(http.MethodGet)

	// Wheel and puzzle reference data
	api.HandleFunc("/wheel/options", gameHandler.WheelOptions).Methods(http.MethodGet)
	api.HandleFunc("/puzzles", puzzleHandler.Pool).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
