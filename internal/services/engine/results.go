package engine

import (
	"github.com/wheelparty/fortunegame-go/internal/model"
)

// ActionRequired signals what input the caller should collect next
type ActionRequired string

const (
	ActionSpin               ActionRequired = "spin"
	ActionGuessConsonant     ActionRequired = "guess_consonant"
	ActionSpinAgain          ActionRequired = "spin_again"
	ActionChooseVowelOrSolve ActionRequired = "choose_vowel_or_solve"
	ActionSelectNextTeam     ActionRequired = "select_next_team"
	ActionAdvanceRound       ActionRequired = "advance_round"
	ActionNone               ActionRequired = ""
)

// Error kinds carried on failed results
const (
	KindSetupError        = "SETUP_ERROR"
	KindIllegalAction     = "ILLEGAL_ACTION"
	KindInvalidLetter     = "INVALID_LETTER"
	KindInsufficientFunds = "INSUFFICIENT_FUNDS"
	KindInvalidWheel      = "INVALID_WHEEL_RESULT"
	KindGameNotFound      = "GAME_NOT_FOUND"
	KindInternalError     = "INTERNAL_ERROR"
)

// ActionOutcome is the shared envelope of every engine result. A failed
// action carries the error kind and leaves the game unmodified.
type ActionOutcome struct {
	Success        bool           `json:"success"`
	Error          string         `json:"error,omitempty"`
	Message        string         `json:"message"`
	ActionRequired ActionRequired `json:"action_required,omitempty"`
	Status         *Status        `json:"status,omitempty"`
}

// TeamStatus is one team's line in the status snapshot
type TeamStatus struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Members       []string `json:"members"`
	RoundMoney    int      `json:"round_money"`
	TotalMoney    int      `json:"total_money"`
	HasFreeSpin   bool     `json:"has_free_spin"`
	IsCurrentTurn bool     `json:"is_current_turn"`
}

// PuzzleStatus is the masked view of the puzzle under play
type PuzzleStatus struct {
	Category            string   `json:"category"`
	Display             string   `json:"display"`
	GuessedLetters      []string `json:"guessed_letters"`
	AvailableConsonants []string `json:"available_consonants"`
	AvailableVowels     []string `json:"available_vowels"`
	Completed           bool     `json:"completed"`
	Solution            string   `json:"solution,omitempty"`
}

// Status is the read-only projection of a game that any UI renders from
type Status struct {
	GameID       string             `json:"game_id"`
	State        model.GameState    `json:"game_state"`
	TurnState    model.TurnState    `json:"turn_state"`
	CurrentRound int                `json:"current_round"`
	TotalRounds  int                `json:"total_rounds"`
	VowelCost    int                `json:"vowel_cost"`
	Teams        []TeamStatus       `json:"teams"`
	Puzzle       *PuzzleStatus      `json:"current_puzzle,omitempty"`
	LastWheel    *model.WheelResult `json:"last_wheel_result,omitempty"`
}

// CreateGameResult is returned by CreateGame
type CreateGameResult struct {
	ActionOutcome
	GameID string `json:"game_id,omitempty"`
}

// StartGameResult is returned by StartGame
type StartGameResult struct {
	ActionOutcome
	CurrentTeam string `json:"current_team,omitempty"`
}

// SpinResult is returned by ProcessWheelSpin
type SpinResult struct {
	ActionOutcome
	Wheel          *model.WheelResult `json:"wheel_result,omitempty"`
	Team           string             `json:"team,omitempty"`
	TurnContinues  bool               `json:"turn_continues"`
	FreeSpinEarned bool               `json:"free_spin_earned,omitempty"`
	PrizeAwarded   int                `json:"prize_awarded,omitempty"`
}

// GuessResult is returned by ProcessLetterGuess
type GuessResult struct {
	ActionOutcome
	Letter        string `json:"letter,omitempty"`
	InPuzzle      bool   `json:"in_puzzle"`
	Occurrences   int    `json:"occurrences,omitempty"`
	MoneyEarned   int    `json:"money_earned,omitempty"`
	PuzzleSolved  bool   `json:"puzzle_solved"`
	TurnContinues bool   `json:"turn_continues"`
	Team          string `json:"team,omitempty"`
}

// VowelResult is returned by ProcessVowelPurchase
type VowelResult struct {
	ActionOutcome
	Vowel         string `json:"vowel,omitempty"`
	Cost          int    `json:"cost,omitempty"`
	InPuzzle      bool   `json:"in_puzzle"`
	PuzzleSolved  bool   `json:"puzzle_solved"`
	TurnContinues bool   `json:"turn_continues"`
	Team          string `json:"team,omitempty"`
}

// SolveResult is returned by ProcessSolveAttempt
type SolveResult struct {
	ActionOutcome
	Guess    string `json:"guess,omitempty"`
	Correct  bool   `json:"correct"`
	Solution string `json:"solution,omitempty"`
	Team     string `json:"team,omitempty"`
}

// AdvanceTeamResult is returned by AdvanceTeam
type AdvanceTeamResult struct {
	ActionOutcome
	Team         string `json:"team,omitempty"`
	UsedFreeSpin bool   `json:"used_free_spin,omitempty"`
}

// WinnerInfo names one winning team and its final bank
type WinnerInfo struct {
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	TotalMoney int    `json:"total_money"`
}

// AdvanceRoundResult is returned by AdvanceRound
type AdvanceRoundResult struct {
	ActionOutcome
	RoundNumber  int          `json:"round_number,omitempty"`
	GameComplete bool         `json:"game_complete"`
	Winners      []WinnerInfo `json:"winners,omitempty"`
}

// EndRoundResult is returned by EndRound
type EndRoundResult struct {
	ActionOutcome
	Solution string `json:"solution,omitempty"`
}

// StatusResult is returned by GameStatus
type StatusResult struct {
	ActionOutcome
}

// LeaderboardEntry is one team's line on the leaderboard
type LeaderboardEntry struct {
	Position    int      `json:"position"`
	TeamID      string   `json:"team_id"`
	TeamName    string   `json:"team_name"`
	Members     []string `json:"members"`
	TotalMoney  int      `json:"total_money"`
	RoundMoney  int      `json:"round_money"`
	HasFreeSpin bool     `json:"has_free_spin"`
}

// LeaderboardResult is returned by Leaderboard
type LeaderboardResult struct {
	ActionOutcome
	Leaderboard []LeaderboardEntry `json:"leaderboard,omitempty"`
}

// TeamSummary is one team's aggregate line in the game summary, ordered
// by banked total
type TeamSummary struct {
	Position   int      `json:"position"`
	TeamID     string   `json:"team_id"`
	TeamName   string   `json:"team_name"`
	Members    []string `json:"members"`
	TotalMoney int      `json:"total_money"`
	RoundMoney int      `json:"round_money"`
	RoundsWon  int      `json:"rounds_won"`
}

// RoundWinnerInfo records which team solved a completed round
type RoundWinnerInfo struct {
	RoundNumber int    `json:"round_number"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	Category    string `json:"category"`
	Solution    string `json:"solution"`
}

// GameSummaryResult is returned by GameSummary. Teams are in
// leaderboard order; RoundStandings orders the same teams by money
// earned in the round under play.
type GameSummaryResult struct {
	ActionOutcome
	TotalRounds     int                `json:"total_rounds,omitempty"`
	CompletedRounds int                `json:"completed_rounds"`
	CurrentRound    int                `json:"current_round,omitempty"`
	MoneyInPlay     int                `json:"money_in_play"`
	HighestTotal    int                `json:"highest_total"`
	HighestRound    int                `json:"highest_round"`
	Teams           []TeamSummary      `json:"teams,omitempty"`
	RoundStandings  []LeaderboardEntry `json:"round_standings,omitempty"`
	RoundWinners    []RoundWinnerInfo  `json:"round_winners,omitempty"`
}

// GameListing is one game's line in the game index
type GameListing struct {
	GameID       string          `json:"game_id"`
	State        model.GameState `json:"game_state"`
	Teams        int             `json:"teams"`
	CurrentRound int             `json:"current_round"`
	TotalRounds  int             `json:"total_rounds"`
}

// ListGamesResult is returned by ListGames
type ListGamesResult struct {
	ActionOutcome
	Games []GameListing `json:"games,omitempty"`
	Count int           `json:"count"`
}

// WheelOptionsResult lists the segments of the standard physical wheel
type WheelOptionsResult struct {
	ActionOutcome
	Money   []model.WheelResult `json:"money_options"`
	Special []model.WheelResult `json:"special_options"`
}

// DeleteGameResult is returned by DeleteGame
type DeleteGameResult struct {
	ActionOutcome
}
