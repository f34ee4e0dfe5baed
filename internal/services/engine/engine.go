package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/services/game"
	"github.com/wheelparty/fortunegame-go/internal/services/scoring"
)

// Engine is the sole public entry point for driving games. It translates
// external requests into controller transitions and converts every
// domain failure into a structured failure result; callers never see a
// raised/returned domain error.
type Engine struct {
	games   game.ControllerInterface
	scoring *scoring.Service
	logger  *slog.Logger
}

// New creates a new Engine
func New(games game.ControllerInterface, scoring *scoring.Service, logger *slog.Logger) *Engine {
	return &Engine{
		games:   games,
		scoring: scoring,
		logger:  logger,
	}
}

// CreateGame validates the roster and builds a new game in SETUP state
func (e *Engine) CreateGame(ctx context.Context, teams []game.TeamSpec, totalRounds int) CreateGameResult {
	g, err := e.games.CreateGame(ctx, teams, totalRounds)
	if err != nil {
		return CreateGameResult{ActionOutcome: e.failure(err, "failed to create game")}
	}
	return CreateGameResult{
		ActionOutcome: e.success(
			fmt.Sprintf("Game created with %d teams and %d rounds", len(g.Teams), g.TotalRounds),
			ActionNone, g),
		GameID: string(g.ID),
	}
}

// StartGame begins play on a SETUP game
func (e *Engine) StartGame(ctx context.Context, gameID model.GameID) StartGameResult {
	g, err := e.games.StartGame(ctx, gameID)
	if err != nil {
		return StartGameResult{ActionOutcome: e.failure(err, "failed to start game")}
	}
	team := g.CurrentTeam()
	return StartGameResult{
		ActionOutcome: e.success(
			fmt.Sprintf("Game started. %s is up first", team.Name),
			ActionSpin, g),
		CurrentTeam: team.Name,
	}
}

// ProcessWheelSpin applies a manually entered wheel result
func (e *Engine) ProcessWheelSpin(ctx context.Context, gameID model.GameID, wheel model.WheelResult) SpinResult {
	outcome, err := e.games.InputWheelResult(ctx, gameID, wheel)
	if err != nil {
		return SpinResult{ActionOutcome: e.failure(err, "failed to process wheel spin")}
	}

	result := SpinResult{
		Wheel:          &outcome.Wheel,
		Team:           outcome.Team.Name,
		TurnContinues:  outcome.TurnContinues,
		FreeSpinEarned: outcome.FreeSpinEarned,
		PrizeAwarded:   outcome.PrizeAwarded,
	}

	switch outcome.Wheel.Kind {
	case model.WheelMoney:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%s spun $%d! Guess a consonant", outcome.Team.Name, outcome.Wheel.Amount),
			ActionGuessConsonant, outcome.Game)
	case model.WheelBankrupt:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%s hit BANKRUPT and lost all round money", outcome.Team.Name),
			ActionSelectNextTeam, outcome.Game)
	case model.WheelLoseTurn:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%s lost their turn", outcome.Team.Name),
			ActionSelectNextTeam, outcome.Game)
	case model.WheelFreeSpin:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%s earned a FREE SPIN! Spin again", outcome.Team.Name),
			ActionSpinAgain, outcome.Game)
	case model.WheelPrize:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%s landed on %s and collected $%d", outcome.Team.Name, outcome.Wheel.Prize, outcome.PrizeAwarded),
			ActionSelectNextTeam, outcome.Game)
	}

	return result
}

// ProcessLetterGuess applies a consonant guess from the current team
func (e *Engine) ProcessLetterGuess(ctx context.Context, gameID model.GameID, letter string) GuessResult {
	r, err := singleLetter(letter)
	if err != nil {
		return GuessResult{ActionOutcome: e.failure(err, "failed to process letter guess")}
	}

	outcome, err := e.games.GuessConsonant(ctx, gameID, r)
	if err != nil {
		return GuessResult{ActionOutcome: e.failure(err, "failed to process letter guess")}
	}

	result := GuessResult{
		Letter:        outcome.Letter,
		InPuzzle:      outcome.InPuzzle,
		Occurrences:   outcome.Occurrences,
		MoneyEarned:   outcome.MoneyEarned,
		PuzzleSolved:  outcome.PuzzleSolved,
		TurnContinues: outcome.TurnContinues,
		Team:          outcome.Game.CurrentTeam().Name,
	}

	switch {
	case outcome.PuzzleSolved:
		result.ActionOutcome = e.success(
			fmt.Sprintf("Puzzle solved! %q revealed the last letters", outcome.Letter),
			ActionAdvanceRound, outcome.Game)
	case outcome.InPuzzle:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%q appears %d time(s), earning $%d", outcome.Letter, outcome.Occurrences, outcome.MoneyEarned),
			ActionChooseVowelOrSolve, outcome.Game)
	default:
		result.ActionOutcome = e.success(
			fmt.Sprintf("Sorry, %q is not in the puzzle", outcome.Letter),
			ActionSelectNextTeam, outcome.Game)
	}

	return result
}

// ProcessVowelPurchase charges and applies a vowel purchase
func (e *Engine) ProcessVowelPurchase(ctx context.Context, gameID model.GameID, vowel string) VowelResult {
	r, err := singleLetter(vowel)
	if err != nil {
		return VowelResult{ActionOutcome: e.failure(err, "failed to process vowel purchase")}
	}

	outcome, err := e.games.BuyVowel(ctx, gameID, r)
	if err != nil {
		return VowelResult{ActionOutcome: e.failure(err, "failed to process vowel purchase")}
	}

	result := VowelResult{
		Vowel:         outcome.Vowel,
		Cost:          outcome.Cost,
		InPuzzle:      outcome.InPuzzle,
		PuzzleSolved:  outcome.PuzzleSolved,
		TurnContinues: outcome.TurnContinues,
		Team:          outcome.Game.CurrentTeam().Name,
	}

	switch {
	case outcome.PuzzleSolved:
		result.ActionOutcome = e.success(
			fmt.Sprintf("Puzzle solved! %q revealed the last letters", outcome.Vowel),
			ActionAdvanceRound, outcome.Game)
	case outcome.InPuzzle:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%q is in the puzzle", outcome.Vowel),
			ActionChooseVowelOrSolve, outcome.Game)
	default:
		result.ActionOutcome = e.success(
			fmt.Sprintf("%q is not in the puzzle", outcome.Vowel),
			ActionSelectNextTeam, outcome.Game)
	}

	return result
}

// ProcessSolveAttempt applies a full-solution guess
func (e *Engine) ProcessSolveAttempt(ctx context.Context, gameID model.GameID, guess string) SolveResult {
	outcome, err := e.games.AttemptSolve(ctx, gameID, guess)
	if err != nil {
		return SolveResult{ActionOutcome: e.failure(err, "failed to process solve attempt")}
	}

	result := SolveResult{
		Guess:   outcome.Guess,
		Correct: outcome.Correct,
		Team:    outcome.Game.CurrentTeam().Name,
	}

	if outcome.Correct {
		result.Solution = outcome.Solution
		result.ActionOutcome = e.success(
			fmt.Sprintf("%s solved the puzzle!", result.Team),
			ActionAdvanceRound, outcome.Game)
	} else {
		result.ActionOutcome = e.success(
			"Sorry, that is not the solution",
			ActionSelectNextTeam, outcome.Game)
	}

	return result
}

// AdvanceTeam hands the turn to the next team (or back to the same team
// when a free spin is consumed)
func (e *Engine) AdvanceTeam(ctx context.Context, gameID model.GameID) AdvanceTeamResult {
	outcome, err := e.games.AdvanceTeam(ctx, gameID)
	if err != nil {
		return AdvanceTeamResult{ActionOutcome: e.failure(err, "failed to advance team")}
	}

	message := fmt.Sprintf("%s is up next", outcome.Team.Name)
	if outcome.UsedFreeSpin {
		message = fmt.Sprintf("%s used their free spin and keeps the turn", outcome.Team.Name)
	}

	return AdvanceTeamResult{
		ActionOutcome: e.success(message, ActionSpin, outcome.Game),
		Team:          outcome.Team.Name,
		UsedFreeSpin:  outcome.UsedFreeSpin,
	}
}

// AdvanceRound moves past a completed round, finishing the game after
// the last one
func (e *Engine) AdvanceRound(ctx context.Context, gameID model.GameID) AdvanceRoundResult {
	outcome, err := e.games.AdvanceRound(ctx, gameID)
	if err != nil {
		return AdvanceRoundResult{ActionOutcome: e.failure(err, "failed to advance round")}
	}

	result := AdvanceRoundResult{
		RoundNumber:  outcome.RoundNumber,
		GameComplete: outcome.GameComplete,
	}

	if outcome.GameComplete {
		for _, w := range outcome.Winners {
			result.Winners = append(result.Winners, WinnerInfo{
				TeamID:     string(w.ID),
				TeamName:   w.Name,
				TotalMoney: w.TotalMoney,
			})
		}
		result.ActionOutcome = e.success("Game complete!", ActionNone, outcome.Game)
	} else {
		result.ActionOutcome = e.success(
			fmt.Sprintf("Continuing to round %d", outcome.RoundNumber),
			ActionSpin, outcome.Game)
	}

	return result
}

// EndRound force-closes the current round without a solver
func (e *Engine) EndRound(ctx context.Context, gameID model.GameID) EndRoundResult {
	g, err := e.games.EndRound(ctx, gameID)
	if err != nil {
		return EndRoundResult{ActionOutcome: e.failure(err, "failed to end round")}
	}
	return EndRoundResult{
		ActionOutcome: e.success("Round closed; puzzle revealed", ActionAdvanceRound, g),
		Solution:      g.CurrentRound().Puzzle.Solution,
	}
}

// GameStatus returns the read-only snapshot of a game
func (e *Engine) GameStatus(ctx context.Context, gameID model.GameID) StatusResult {
	g, err := e.games.GetGame(ctx, gameID)
	if err != nil {
		return StatusResult{ActionOutcome: e.failure(err, "failed to fetch game status")}
	}
	return StatusResult{ActionOutcome: e.success("", e.nextAction(g), g)}
}

// Leaderboard returns teams ordered by banked totals
func (e *Engine) Leaderboard(ctx context.Context, gameID model.GameID) LeaderboardResult {
	g, err := e.games.GetGame(ctx, gameID)
	if err != nil {
		return LeaderboardResult{ActionOutcome: e.failure(err, "failed to fetch leaderboard")}
	}

	entries := e.scoring.Leaderboard(g)
	result := LeaderboardResult{ActionOutcome: e.success("", ActionNone, g)}
	for _, entry := range entries {
		result.Leaderboard = append(result.Leaderboard, LeaderboardEntry{
			Position:    entry.Position,
			TeamID:      string(entry.TeamID),
			TeamName:    entry.TeamName,
			Members:     entry.Members,
			TotalMoney:  entry.TotalMoney,
			RoundMoney:  entry.RoundMoney,
			HasFreeSpin: entry.HasFreeSpin,
		})
	}
	return result
}

// GameSummary returns the aggregate money overview of a game: the
// leaderboard with rounds won per team, standings for the round under
// play, and the solver of every completed round
func (e *Engine) GameSummary(ctx context.Context, gameID model.GameID) GameSummaryResult {
	g, err := e.games.GetGame(ctx, gameID)
	if err != nil {
		return GameSummaryResult{ActionOutcome: e.failure(err, "failed to fetch game summary")}
	}

	summary := e.scoring.GameSummary(g)
	result := GameSummaryResult{
		ActionOutcome:   e.success("", ActionNone, g),
		TotalRounds:     summary.TotalRounds,
		CompletedRounds: summary.CompletedRounds,
		CurrentRound:    summary.CurrentRound,
		MoneyInPlay:     summary.MoneyInPlay,
		HighestTotal:    summary.HighestTotal,
		HighestRound:    summary.HighestRound,
	}

	for _, entry := range e.scoring.Leaderboard(g) {
		result.Teams = append(result.Teams, TeamSummary{
			Position:   entry.Position,
			TeamID:     string(entry.TeamID),
			TeamName:   entry.TeamName,
			Members:    entry.Members,
			TotalMoney: entry.TotalMoney,
			RoundMoney: entry.RoundMoney,
			RoundsWon:  e.scoring.RoundsWon(g, entry.TeamID),
		})
	}

	for _, entry := range e.scoring.RoundStandings(g) {
		result.RoundStandings = append(result.RoundStandings, LeaderboardEntry{
			Position:    entry.Position,
			TeamID:      string(entry.TeamID),
			TeamName:    entry.TeamName,
			Members:     entry.Members,
			TotalMoney:  entry.TotalMoney,
			RoundMoney:  entry.RoundMoney,
			HasFreeSpin: entry.HasFreeSpin,
		})
	}

	for _, w := range summary.RoundWinners {
		result.RoundWinners = append(result.RoundWinners, RoundWinnerInfo{
			RoundNumber: w.RoundNumber,
			TeamID:      string(w.TeamID),
			TeamName:    w.TeamName,
			Category:    w.Category,
			Solution:    w.Solution,
		})
	}

	return result
}

// ListGames returns the index of every stored game
func (e *Engine) ListGames(ctx context.Context) ListGamesResult {
	games, err := e.games.ListGames(ctx)
	if err != nil {
		return ListGamesResult{ActionOutcome: e.failure(err, "failed to list games")}
	}

	result := ListGamesResult{
		ActionOutcome: ActionOutcome{Success: true},
		Count:         len(games),
	}
	for _, g := range games {
		result.Games = append(result.Games, GameListing{
			GameID:       string(g.ID),
			State:        g.State,
			Teams:        len(g.Teams),
			CurrentRound: g.CurrentRoundIndex + 1,
			TotalRounds:  g.TotalRounds,
		})
	}
	return result
}

// DeleteGame removes a game entirely
func (e *Engine) DeleteGame(ctx context.Context, gameID model.GameID) DeleteGameResult {
	if err := e.games.DeleteGame(ctx, gameID); err != nil {
		return DeleteGameResult{ActionOutcome: e.failure(err, "failed to delete game")}
	}
	return DeleteGameResult{ActionOutcome: ActionOutcome{Success: true, Message: "Game deleted"}}
}

// WheelOptions lists the standard wheel segments for manual-entry UIs
func (e *Engine) WheelOptions() WheelOptionsResult {
	result := WheelOptionsResult{
		ActionOutcome: ActionOutcome{Success: true},
	}
	for _, w := range model.StandardWheel() {
		if w.IsMoney() {
			result.Money = append(result.Money, w)
		} else {
			result.Special = append(result.Special, w)
		}
	}
	return result
}

// success builds the shared envelope with a fresh status snapshot
func (e *Engine) success(message string, action ActionRequired, g *model.Game) ActionOutcome {
	return ActionOutcome{
		Success:        true,
		Message:        message,
		ActionRequired: action,
		Status:         NewStatus(g),
	}
}

// failure maps a domain error to its result kind; nothing was mutated
func (e *Engine) failure(err error, message string) ActionOutcome {
	return ActionOutcome{
		Success: false,
		Error:   errorKind(err),
		Message: fmt.Sprintf("%s: %s", message, err.Error()),
	}
}

// nextAction derives the pending input for a snapshot-only request
func (e *Engine) nextAction(g *model.Game) ActionRequired {
	switch g.State {
	case model.GameStateRoundCompleted:
		return ActionAdvanceRound
	case model.GameStateInProgress:
		switch g.TurnState {
		case model.TurnWaitingForSpin:
			return ActionSpin
		case model.TurnWaitingForLetterGuess:
			return ActionGuessConsonant
		case model.TurnEnded:
			return ActionSelectNextTeam
		}
	}
	return ActionNone
}

// NewStatus projects a game into its read-only snapshot. The solution is
// exposed only once the round has completed.
func NewStatus(g *model.Game) *Status {
	status := &Status{
		GameID:       string(g.ID),
		State:        g.State,
		TurnState:    g.TurnState,
		CurrentRound: g.CurrentRoundIndex + 1,
		TotalRounds:  g.TotalRounds,
		VowelCost:    g.VowelCost,
		LastWheel:    g.LastWheel,
	}

	for i, t := range g.Teams {
		status.Teams = append(status.Teams, TeamStatus{
			ID:            string(t.ID),
			Name:          t.Name,
			Members:       t.Members,
			RoundMoney:    t.RoundMoney,
			TotalMoney:    t.TotalMoney,
			HasFreeSpin:   t.HasFreeSpin,
			IsCurrentTurn: g.State == model.GameStateInProgress && i == g.CurrentTeamIndex,
		})
	}

	if round := g.CurrentRound(); round != nil && g.State != model.GameStateSetup {
		ps := &PuzzleStatus{
			Category:            round.Puzzle.Category,
			Display:             round.Puzzle.Display(),
			GuessedLetters:      round.Puzzle.GuessedLetters(),
			AvailableConsonants: round.Puzzle.AvailableConsonants(),
			AvailableVowels:     round.Puzzle.AvailableVowels(),
			Completed:           round.Completed,
		}
		if round.Completed {
			ps.Solution = round.Puzzle.Solution
		}
		status.Puzzle = ps
	}

	return status
}

// errorKind classifies a domain error into its result kind
func errorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidTeamCount),
		errors.Is(err, model.ErrInvalidRoundCount),
		errors.Is(err, model.ErrEmptyTeamName),
		errors.Is(err, model.ErrNoTeamMembers),
		errors.Is(err, model.ErrNoPuzzles),
		errors.Is(err, model.ErrEmptySolution),
		errors.Is(err, model.ErrEmptyCategory):
		return KindSetupError
	case errors.Is(err, model.ErrGameNotFound):
		return KindGameNotFound
	case errors.Is(err, model.ErrIllegalAction),
		errors.Is(err, model.ErrGameNotStarted),
		errors.Is(err, model.ErrGameAlreadyStarted),
		errors.Is(err, model.ErrGameComplete),
		errors.Is(err, model.ErrRoundNotCompleted),
		errors.Is(err, model.ErrNoWheelResult):
		return KindIllegalAction
	case errors.Is(err, model.ErrInvalidLetter),
		errors.Is(err, model.ErrLetterAlreadyGuessed),
		errors.Is(err, model.ErrNotAConsonant),
		errors.Is(err, model.ErrNotAVowel):
		return KindInvalidLetter
	case errors.Is(err, model.ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, model.ErrInvalidWheelResult):
		return KindInvalidWheel
	default:
		return KindInternalError
	}
}

// singleLetter decodes a one-character guess string
func singleLetter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, model.ErrInvalidLetter
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
