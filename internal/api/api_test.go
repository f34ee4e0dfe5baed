package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelparty/fortunegame-go/internal/api"
	"github.com/wheelparty/fortunegame-go/internal/factory"
	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/services/engine"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock,
	// loading a fixed puzzle so the flow is predictable
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	err = app.PuzzleService.LoadEntries([]model.PuzzleEntry{
		{Solution: "HELLO WORLD", Category: "PHRASE"},
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:  logger,
		Engine:  app.Engine,
		Puzzles: app.PuzzleService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"teams": []map[string]any{
			{"name": "Reds", "members": []string{"alice", "ada"}},
			{"name": "Blues", "members": []string{"bob"}},
		},
		"total_rounds": 2,
	}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp engine.CreateGameResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.GameID)
	require.NotNil(t, resp.Status)
	assert.Equal(t, model.GameStateSetup, resp.Status.State)
	assert.Equal(t, 2, resp.Status.TotalRounds)
	assert.Len(t, resp.Status.Teams, 2)
}

func TestCreateGameInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestCreateGameTooFewTeams(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"teams": []map[string]any{
			{"name": "Reds", "members": []string{"alice"}},
		},
	}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp engine.CreateGameResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, engine.KindSetupError, resp.Error)
}

func TestUnknownGameIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp engine.StatusResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, engine.KindGameNotFound, resp.Error)
}

func TestFullGameFlow(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)

	// Start the game
	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/start", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var startResp engine.StartGameResult
	err := json.Unmarshal(rr.Body.Bytes(), &startResp)
	require.NoError(t, err)
	assert.Equal(t, "Reds", startResp.CurrentTeam)
	assert.Equal(t, engine.ActionSpin, startResp.ActionRequired)
	require.NotNil(t, startResp.Status.Puzzle)
	assert.Equal(t, "_____ _____", startResp.Status.Puzzle.Display)
	assert.Empty(t, startResp.Status.Puzzle.Solution)

	// Spin $500
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/spin", map[string]any{
		"result": "money",
		"amount": 500,
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var spinResp engine.SpinResult
	err = json.Unmarshal(rr.Body.Bytes(), &spinResp)
	require.NoError(t, err)
	assert.True(t, spinResp.TurnContinues)
	assert.Equal(t, engine.ActionGuessConsonant, spinResp.ActionRequired)

	// Guess L (three occurrences, $1500)
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/guess", map[string]string{"letter": "L"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var guessResp engine.GuessResult
	err = json.Unmarshal(rr.Body.Bytes(), &guessResp)
	require.NoError(t, err)
	assert.True(t, guessResp.InPuzzle)
	assert.Equal(t, 3, guessResp.Occurrences)
	assert.Equal(t, 1500, guessResp.MoneyEarned)
	assert.Equal(t, engine.ActionChooseVowelOrSolve, guessResp.ActionRequired)

	// Buy an O
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/vowel", map[string]string{"vowel": "O"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var vowelResp engine.VowelResult
	err = json.Unmarshal(rr.Body.Bytes(), &vowelResp)
	require.NoError(t, err)
	assert.True(t, vowelResp.InPuzzle)
	assert.Equal(t, 250, vowelResp.Cost)

	// Solve the puzzle
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/solve", map[string]string{"solution": "hello world"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var solveResp engine.SolveResult
	err = json.Unmarshal(rr.Body.Bytes(), &solveResp)
	require.NoError(t, err)
	assert.True(t, solveResp.Correct)
	assert.Equal(t, "HELLO WORLD", solveResp.Solution)
	assert.Equal(t, engine.ActionAdvanceRound, solveResp.ActionRequired)
	require.NotNil(t, solveResp.Status.Puzzle)
	assert.Equal(t, "HELLO WORLD", solveResp.Status.Puzzle.Solution)

	// Leaderboard has Reds on top with their settled bank ($1500 - $250 vowel)
	rr = ts.request(http.MethodGet, "/api/v1/games/"+gameID+"/leaderboard", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var lbResp engine.LeaderboardResult
	err = json.Unmarshal(rr.Body.Bytes(), &lbResp)
	require.NoError(t, err)
	require.Len(t, lbResp.Leaderboard, 2)
	assert.Equal(t, "Reds", lbResp.Leaderboard[0].TeamName)
	assert.Equal(t, 1250, lbResp.Leaderboard[0].TotalMoney)

	// Advance past the only round completes the game
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/advance-round", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var advResp engine.AdvanceRoundResult
	err = json.Unmarshal(rr.Body.Bytes(), &advResp)
	require.NoError(t, err)
	assert.True(t, advResp.GameComplete)
	require.Len(t, advResp.Winners, 1)
	assert.Equal(t, "Reds", advResp.Winners[0].TeamName)
}

func TestSpinOutOfTurnConflicts(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)
	startGame(t, ts, gameID)

	spinBody := map[string]any{"result": "MONEY", "amount": 500}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/spin", spinBody)
	require.Equal(t, http.StatusOK, rr.Code)

	// A second spin before guessing is an illegal action
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/spin", spinBody)
	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp engine.SpinResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, engine.KindIllegalAction, resp.Error)
}

func TestInvalidWheelResult(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)
	startGame(t, ts, gameID)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/spin", map[string]any{
		"result": "MONEY",
		"amount": -5,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), engine.KindInvalidWheel)
}

func TestInvalidLetterGuess(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)
	startGame(t, ts, gameID)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/spin", map[string]any{
		"result": "MONEY",
		"amount": 500,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/guess", map[string]string{"letter": "LL"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), engine.KindInvalidLetter)
}

func TestVowelWithoutFundsConflicts(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)
	startGame(t, ts, gameID)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/vowel", map[string]string{"vowel": "O"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), engine.KindInsufficientFunds)
}

func TestEndRoundRevealsSolution(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)
	startGame(t, ts, gameID)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/end-round", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp engine.EndRoundResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", resp.Solution)
	assert.Equal(t, engine.ActionAdvanceRound, resp.ActionRequired)
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+gameID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Deletion is idempotent
	rr = ts.request(http.MethodDelete, "/api/v1/games/"+gameID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+gameID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)

	first := createGame(t, ts)
	second := createGame(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp engine.ListGamesResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Games, 2)

	ids := []string{resp.Games[0].GameID, resp.Games[1].GameID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
	assert.Equal(t, model.GameStateSetup, resp.Games[0].State)
}

func TestListGamesEmpty(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp engine.ListGamesResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Games)
}

func TestGameSummary(t *testing.T) {
	ts := newTestServer(t)

	gameID := createGame(t, ts)
	startGame(t, ts, gameID)

	// Reds earn $1500 and solve the puzzle
	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/spin", map[string]any{
		"result": "MONEY",
		"amount": 500,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/guess", map[string]string{"letter": "L"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/solve", map[string]string{"solution": "hello world"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+gameID+"/summary", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp engine.GameSummaryResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.CompletedRounds)
	assert.Equal(t, 1500, resp.MoneyInPlay)
	require.Len(t, resp.Teams, 2)
	assert.Equal(t, "Reds", resp.Teams[0].TeamName)
	assert.Equal(t, 1, resp.Teams[0].RoundsWon)
	require.Len(t, resp.RoundWinners, 1)
	assert.Equal(t, "HELLO WORLD", resp.RoundWinners[0].Solution)
}

func TestGameSummaryUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/nope/summary", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), engine.KindGameNotFound)
}

func TestPuzzlePool(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/puzzles", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count      int      `json:"count"`
		Categories []string `json:"categories"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"PHRASE"}, resp.Categories)
}

func TestWheelOptions(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/wheel/options", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp engine.WheelOptionsResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Money, 6)
	assert.Len(t, resp.Special, 6)
}

// Helper functions

func createGame(t *testing.T, ts *testServer) string {
	t.Helper()

	body := map[string]any{
		"teams": []map[string]any{
			{"name": "Reds", "members": []string{"alice"}},
			{"name": "Blues", "members": []string{"bob"}},
		},
		"total_rounds": 1,
	}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp engine.CreateGameResult
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotEmpty(t, resp.GameID)

	return resp.GameID
}

func startGame(t *testing.T, ts *testServer, gameID string) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/start", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}
