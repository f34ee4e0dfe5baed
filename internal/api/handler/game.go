package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wheelparty/fortunegame-go/internal/api/apierr"
	"github.com/wheelparty/fortunegame-go/internal/api/request"
	"github.com/wheelparty/fortunegame-go/internal/api/response"
	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/services/engine"
	"github.com/wheelparty/fortunegame-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	engine *engine.Engine
}

// NewGameHandler creates a new game handler
func NewGameHandler(eng *engine.Engine) *GameHandler {
	return &GameHandler{engine: eng}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	teams := make([]game.TeamSpec, len(req.Teams))
	for i, t := range req.Teams {
		teams[i] = game.TeamSpec{Name: t.Name, Members: t.Members}
	}

	result := h.engine.CreateGame(r.Context(), teams, req.TotalRounds)
	writeResult(w, http.StatusCreated, result.ActionOutcome, result)
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	result := h.engine.StartGame(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Spin handles POST /api/v1/games/{id}/spin
func (h *GameHandler) Spin(w http.ResponseWriter, r *http.Request) {
	var req request.SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	wheel := model.WheelResult{
		Kind:   model.WheelKind(strings.ToUpper(strings.TrimSpace(req.Result))),
		Amount: req.Amount,
		Prize:  req.Prize,
	}

	result := h.engine.ProcessWheelSpin(r.Context(), gameID(r), wheel)
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Guess handles POST /api/v1/games/{id}/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	result := h.engine.ProcessLetterGuess(r.Context(), gameID(r), req.Letter)
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Vowel handles POST /api/v1/games/{id}/vowel
func (h *GameHandler) Vowel(w http.ResponseWriter, r *http.Request) {
	var req request.VowelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	result := h.engine.ProcessVowelPurchase(r.Context(), gameID(r), req.Vowel)
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Solve handles POST /api/v1/games/{id}/solve
func (h *GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	result := h.engine.ProcessSolveAttempt(r.Context(), gameID(r), req.Solution)
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// AdvanceTeam handles POST /api/v1/games/{id}/advance-team
func (h *GameHandler) AdvanceTeam(w http.ResponseWriter, r *http.Request) {
	result := h.engine.AdvanceTeam(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// AdvanceRound handles POST /api/v1/games/{id}/advance-round
func (h *GameHandler) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	result := h.engine.AdvanceRound(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// EndRound handles POST /api/v1/games/{id}/end-round
func (h *GameHandler) EndRound(w http.ResponseWriter, r *http.Request) {
	result := h.engine.EndRound(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Status handles GET /api/v1/games/{id}
func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := h.engine.GameStatus(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	result := h.engine.ListGames(r.Context())
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Leaderboard handles GET /api/v1/games/{id}/leaderboard
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	result := h.engine.Leaderboard(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Summary handles GET /api/v1/games/{id}/summary
func (h *GameHandler) Summary(w http.ResponseWriter, r *http.Request) {
	result := h.engine.GameSummary(r.Context(), gameID(r))
	writeResult(w, http.StatusOK, result.ActionOutcome, result)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result := h.engine.DeleteGame(r.Context(), gameID(r))
	if !result.Success {
		writeResult(w, http.StatusOK, result.ActionOutcome, result)
		return
	}
	response.NoContent(w)
}

// WheelOptions handles GET /api/v1/wheel/options
func (h *GameHandler) WheelOptions(w http.ResponseWriter, r *http.Request) {
	result := h.engine.WheelOptions()
	response.JSON(w, http.StatusOK, result)
}

// writeResult writes an engine result, translating failure kinds to
// HTTP status codes. The result body is the same shape either way.
func writeResult(w http.ResponseWriter, okStatus int, outcome engine.ActionOutcome, body any) {
	status := okStatus
	if !outcome.Success {
		status = apierr.StatusForKind(outcome.Error)
	}
	response.JSON(w, status, body)
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
