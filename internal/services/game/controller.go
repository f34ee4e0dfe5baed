package game

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"unicode"

	"github.com/wheelparty/fortunegame-go/internal/dependencies/clock"
	"github.com/wheelparty/fortunegame-go/internal/dependencies/random"
	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/services/puzzle"
	"github.com/wheelparty/fortunegame-go/internal/services/scoring"
	"github.com/wheelparty/fortunegame-go/internal/storage"
)

const (
	idAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	gameIDLength = 12
	teamIDLength = 8
)

// Controller manages the turn/round state machine. Every operation is
// validate-then-mutate-then-save: an illegal action returns an error
// with no mutation applied.
type Controller struct {
	storage        storage.Storage
	puzzleService  *puzzle.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	puzzleService *puzzle.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		puzzleService:  puzzleService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// TeamSpec names a team and its members at game creation
type TeamSpec struct {
	Name    string
	Members []string
}

// SpinOutcome describes the effect of a wheel spin input
type SpinOutcome struct {
	Game           *model.Game
	Wheel          model.WheelResult
	Team           *model.Team
	TurnContinues  bool
	FreeSpinEarned bool
	PrizeAwarded   int
}

// GuessOutcome describes the effect of a consonant guess
type GuessOutcome struct {
	Game          *model.Game
	Letter        string
	InPuzzle      bool
	Occurrences   int
	MoneyEarned   int
	PuzzleSolved  bool
	TurnContinues bool
}

// VowelOutcome describes the effect of a vowel purchase
type VowelOutcome struct {
	Game          *model.Game
	Vowel         string
	Cost          int
	InPuzzle      bool
	PuzzleSolved  bool
	TurnContinues bool
}

// SolveOutcome describes the effect of a solve attempt
type SolveOutcome struct {
	Game     *model.Game
	Guess    string
	Correct  bool
	Solution string
}

// AdvanceTeamOutcome describes the turn handover
type AdvanceTeamOutcome struct {
	Game         *model.Game
	Team         *model.Team
	UsedFreeSpin bool
}

// AdvanceRoundOutcome describes the round handover
type AdvanceRoundOutcome struct {
	Game         *model.Game
	RoundNumber  int
	GameComplete bool
	Winners      []*model.Team
}

// CreateGame builds a new game in SETUP state: validated teams, one
// fresh puzzle per round drawn from the provider
func (c *Controller) CreateGame(ctx context.Context, teams []TeamSpec, totalRounds int) (*model.Game, error) {
	if len(teams) < model.MinTeams || len(teams) > model.MaxTeams {
		return nil, model.ErrInvalidTeamCount
	}
	if totalRounds == 0 {
		totalRounds = model.DefaultRounds
	}
	if totalRounds < model.MinRounds || totalRounds > model.MaxRounds {
		return nil, model.ErrInvalidRoundCount
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(gameIDLength, idAlphabet))

	game := &model.Game{
		ID:          gameID,
		TotalRounds: totalRounds,
		VowelCost:   model.DefaultVowelCost,
		State:       model.GameStateSetup,
		TurnState:   model.TurnWaitingForSpin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, spec := range teams {
		teamID := model.TeamID(c.random.String(teamIDLength, idAlphabet))
		team, err := model.NewTeam(teamID, spec.Name, spec.Members)
		if err != nil {
			return nil, err
		}
		game.Teams = append(game.Teams, team)
	}

	used := make(map[int]bool)
	for number := 1; number <= totalRounds; number++ {
		entry, idx, err := c.puzzleService.NextPuzzle(used)
		if err != nil {
			return nil, err
		}
		used[idx] = true

		p, err := model.NewPuzzle(entry.Solution, entry.Category)
		if err != nil {
			return nil, err
		}
		game.Rounds = append(game.Rounds, model.NewRound(number, p))
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("team_count", len(game.Teams)),
		slog.Int("total_rounds", totalRounds),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	return c.storage.DeleteGame(ctx, gameID)
}

// ListGames loads every stored game, ordered by ID. A game deleted
// between the listing and the load is skipped, not an error.
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	ids, err := c.storage.ListGameIDs(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	games := make([]*model.Game, 0, len(ids))
	for _, id := range ids {
		game, err := c.storage.GetGame(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

// StartGame moves a SETUP game into its first round
func (c *Controller) StartGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateSetup {
		return nil, model.ErrGameAlreadyStarted
	}

	game.State = model.GameStateInProgress
	game.TurnState = model.TurnWaitingForSpin
	game.CurrentRoundIndex = 0
	game.CurrentTeamIndex = 0
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started", slog.String("game_id", string(gameID)))
	return game, nil
}

// InputWheelResult applies an externally entered wheel spin to the
// current team's turn
func (c *Controller) InputWheelResult(ctx context.Context, gameID model.GameID, wheel model.WheelResult) (*SpinOutcome, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.TurnState != model.TurnWaitingForSpin {
		return nil, model.ErrIllegalAction
	}
	if err := wheel.Validate(); err != nil {
		return nil, err
	}

	team := game.CurrentTeam()
	result := wheel
	game.LastWheel = &result

	outcome := &SpinOutcome{
		Game:          game,
		Wheel:         wheel,
		Team:          team,
		TurnContinues: true,
	}

	switch wheel.Kind {
	case model.WheelMoney:
		game.TurnState = model.TurnWaitingForLetterGuess
	case model.WheelBankrupt:
		team.Bankrupt()
		game.TurnState = model.TurnEnded
		outcome.TurnContinues = false
	case model.WheelLoseTurn:
		game.TurnState = model.TurnEnded
		outcome.TurnContinues = false
	case model.WheelFreeSpin:
		team.HasFreeSpin = true
		outcome.FreeSpinEarned = true
	case model.WheelPrize:
		// Non-guessable segment: award the flat payout, turn ends
		team.CreditPrize(wheel.Amount)
		game.TurnState = model.TurnEnded
		outcome.TurnContinues = false
		outcome.PrizeAwarded = wheel.Amount
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return outcome, nil
}

// GuessConsonant applies a consonant guess against the pending money
// wheel result
func (c *Controller) GuessConsonant(ctx context.Context, gameID model.GameID, letter rune) (*GuessOutcome, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.TurnState != model.TurnWaitingForLetterGuess {
		return nil, model.ErrIllegalAction
	}
	if game.LastWheel == nil || !game.LastWheel.IsMoney() {
		return nil, model.ErrNoWheelResult
	}
	if err := model.ValidateLetter(letter); err != nil {
		return nil, err
	}
	if model.IsVowel(letter) {
		return nil, model.ErrNotAConsonant
	}

	team := game.CurrentTeam()
	p := game.CurrentRound().Puzzle

	report, err := p.ApplyGuess(letter)
	if err != nil {
		return nil, err
	}

	outcome := &GuessOutcome{
		Game:        game,
		Letter:      string(unicode.ToUpper(letter)),
		InPuzzle:    report.Correct,
		Occurrences: report.Occurrences,
	}

	if report.Correct {
		outcome.MoneyEarned = c.scoringService.MoneyEarned(report.Occurrences, game.LastWheel.Amount)
		team.CreditConsonant(game.LastWheel.Amount, report.Occurrences)

		if p.IsComplete() {
			c.completeRound(game, team.ID)
			outcome.PuzzleSolved = true
		} else {
			game.TurnState = model.TurnWaitingForSpin
			outcome.TurnContinues = true
		}
	} else {
		game.TurnState = model.TurnEnded
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return outcome, nil
}

// BuyVowel charges the vowel cost and applies the vowel guess. The cost
// is charged once the purchase is accepted, correct or not.
func (c *Controller) BuyVowel(ctx context.Context, gameID model.GameID, letter rune) (*VowelOutcome, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	// Vowels may be bought at any spin-free moment of the active turn
	if game.TurnState != model.TurnWaitingForSpin && game.TurnState != model.TurnWaitingForLetterGuess {
		return nil, model.ErrIllegalAction
	}
	if err := model.ValidateLetter(letter); err != nil {
		return nil, err
	}
	if !model.IsVowel(letter) {
		return nil, model.ErrNotAVowel
	}

	team := game.CurrentTeam()
	if !team.CanAfford(game.VowelCost) {
		return nil, model.ErrInsufficientFunds
	}

	p := game.CurrentRound().Puzzle
	report, err := p.ApplyGuess(letter)
	if err != nil {
		return nil, err
	}

	team.ChargeVowel(game.VowelCost)

	outcome := &VowelOutcome{
		Game:     game,
		Vowel:    string(unicode.ToUpper(letter)),
		Cost:     game.VowelCost,
		InPuzzle: report.Correct,
	}

	switch {
	case report.Correct && p.IsComplete():
		c.completeRound(game, team.ID)
		outcome.PuzzleSolved = true
	case report.Correct:
		game.TurnState = model.TurnWaitingForSpin
		outcome.TurnContinues = true
	default:
		game.TurnState = model.TurnEnded
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return outcome, nil
}

// AttemptSolve applies a full-solution guess from the current team
func (c *Controller) AttemptSolve(ctx context.Context, gameID model.GameID, guess string) (*SolveOutcome, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsTurnActive() {
		return nil, model.ErrIllegalAction
	}

	team := game.CurrentTeam()
	p := game.CurrentRound().Puzzle

	outcome := &SolveOutcome{
		Game:     game,
		Guess:    guess,
		Correct:  p.AttemptSolve(guess),
		Solution: p.Solution,
	}

	if outcome.Correct {
		c.completeRound(game, team.ID)
	} else {
		game.TurnState = model.TurnEnded
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return outcome, nil
}

// AdvanceTeam hands the turn over after TURN_ENDED. A team holding a
// free spin keeps the turn: the flag is consumed instead of advancing.
func (c *Controller) AdvanceTeam(ctx context.Context, gameID model.GameID) (*AdvanceTeamOutcome, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.TurnState != model.TurnEnded {
		return nil, model.ErrIllegalAction
	}

	outcome := &AdvanceTeamOutcome{Game: game}

	current := game.CurrentTeam()
	if current.HasFreeSpin {
		current.HasFreeSpin = false
		outcome.UsedFreeSpin = true
	} else {
		game.CurrentTeamIndex = (game.CurrentTeamIndex + 1) % len(game.Teams)
	}

	game.TurnState = model.TurnWaitingForSpin
	game.LastWheel = nil
	game.UpdatedAt = c.clock.Now()
	outcome.Team = game.CurrentTeam()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return outcome, nil
}

// AdvanceRound moves a ROUND_COMPLETED game into the next round, or to
// GAME_COMPLETED after the final round
func (c *Controller) AdvanceRound(ctx context.Context, gameID model.GameID) (*AdvanceRoundOutcome, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateRoundCompleted {
		return nil, model.ErrRoundNotCompleted
	}

	outcome := &AdvanceRoundOutcome{Game: game}

	if game.HasMoreRounds() {
		game.CurrentRoundIndex++
		game.CurrentTeamIndex = 0
		game.State = model.GameStateInProgress
		game.TurnState = model.TurnWaitingForSpin
		game.LastWheel = nil
		for _, t := range game.Teams {
			t.RoundMoney = 0
		}
		outcome.RoundNumber = game.CurrentRound().Number
	} else {
		game.State = model.GameStateCompleted
		outcome.GameComplete = true
		outcome.Winners = c.scoringService.Winners(game)

		c.logger.Info("game completed",
			slog.String("game_id", string(game.ID)),
			slog.Int("winner_count", len(outcome.Winners)),
		)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return outcome, nil
}

// EndRound force-closes the current round without a solver: the puzzle
// is revealed and every team settles as usual
func (c *Controller) EndRound(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	c.completeRound(game, "")
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("round force-closed",
		slog.String("game_id", string(game.ID)),
		slog.Int("round", game.CurrentRound().Number),
	)
	return game, nil
}

// completeRound closes the current round: reveal the puzzle, record the
// solver (empty for a forced close) and settle every team's money
func (c *Controller) completeRound(game *model.Game, winner model.TeamID) {
	game.CurrentRound().Complete(winner)
	c.scoringService.SettleRound(game)
	game.State = model.GameStateRoundCompleted
	game.TurnState = model.TurnEnded
}

// activeGame loads a game and checks it is accepting turn actions
func (c *Controller) activeGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.State {
	case model.GameStateSetup:
		return nil, model.ErrGameNotStarted
	case model.GameStateCompleted:
		return nil, model.ErrGameComplete
	case model.GameStateRoundCompleted:
		return nil, model.ErrIllegalAction
	}
	return game, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, teams []TeamSpec, totalRounds int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	StartGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	InputWheelResult(ctx context.Context, gameID model.GameID, wheel model.WheelResult) (*SpinOutcome, error)
	GuessConsonant(ctx context.Context, gameID model.GameID, letter rune) (*GuessOutcome, error)
	BuyVowel(ctx context.Context, gameID model.GameID, letter rune) (*VowelOutcome, error)
	AttemptSolve(ctx context.Context, gameID model.GameID, guess string) (*SolveOutcome, error)
	AdvanceTeam(ctx context.Context, gameID model.GameID) (*AdvanceTeamOutcome, error)
	AdvanceRound(ctx context.Context, gameID model.GameID) (*AdvanceRoundOutcome, error)
	EndRound(ctx context.Context, gameID model.GameID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
