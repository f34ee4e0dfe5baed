package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateSetup          GameState = "SETUP"
	GameStateInProgress     GameState = "IN_PROGRESS"
	GameStateRoundCompleted GameState = "ROUND_COMPLETED"
	GameStateCompleted      GameState = "GAME_COMPLETED"
)

// TurnState represents what the current team's turn is waiting on
type TurnState string

const (
	TurnWaitingForSpin         TurnState = "WAITING_FOR_SPIN"
	TurnWaitingForLetterGuess  TurnState = "WAITING_FOR_LETTER_GUESS"
	TurnWaitingForSolveAttempt TurnState = "WAITING_FOR_SOLVE_ATTEMPT"
	TurnEnded                  TurnState = "TURN_ENDED"
)

// Setup bounds and defaults
const (
	MinTeams         = 2
	MaxTeams         = 6
	MinRounds        = 1
	MaxRounds        = 5
	DefaultRounds    = 3
	DefaultVowelCost = 250
)

// Game is the aggregate for one in-person party game: the ordered teams,
// the rounds with their puzzles, and the turn/round state machine
// pointers. A game is owned exclusively by its storage key; nothing is
// shared between games.
type Game struct {
	ID                GameID       `json:"id"`
	Teams             []*Team      `json:"teams"`
	Rounds            []*Round     `json:"rounds"`
	CurrentRoundIndex int          `json:"current_round_index"`
	CurrentTeamIndex  int          `json:"current_team_index"`
	TotalRounds       int          `json:"total_rounds"`
	VowelCost         int          `json:"vowel_cost"`
	State             GameState    `json:"state"`
	TurnState         TurnState    `json:"turn_state"`
	LastWheel         *WheelResult `json:"last_wheel,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// CurrentTeam returns the team whose turn it is
func (g *Game) CurrentTeam() *Team {
	if len(g.Teams) == 0 {
		return nil
	}
	return g.Teams[g.CurrentTeamIndex]
}

// CurrentRound returns the round in play
func (g *Game) CurrentRound() *Round {
	if g.CurrentRoundIndex < 0 || g.CurrentRoundIndex >= len(g.Rounds) {
		return nil
	}
	return g.Rounds[g.CurrentRoundIndex]
}

// TeamByID finds a team by ID, or nil
func (g *Game) TeamByID(id TeamID) *Team {
	for _, t := range g.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// IsTurnActive reports whether the current team still holds an active
// decision window
func (g *Game) IsTurnActive() bool {
	return g.State == GameStateInProgress && g.TurnState != TurnEnded
}

// HasMoreRounds reports whether a round remains after the current one
func (g *Game) HasMoreRounds() bool {
	return g.CurrentRoundIndex+1 < len(g.Rounds)
}
