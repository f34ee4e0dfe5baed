package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateResult:
		o.printCreateResult(v)
	case ActionResult:
		o.printActionResult(v)
	case StatusResult:
		o.printActionResult(ActionResult(v))
	case ListResult:
		o.printListResult(v)
	case LeaderboardResult:
		o.printLeaderboardResult(v)
	case SummaryResult:
		o.printSummaryResult(v)
	case WheelOptionsResult:
		o.printWheelOptionsResult(v)
	case PuzzlePoolResult:
		o.printPuzzlePoolResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ActionResult is the shared API result envelope
type ActionResult struct {
	Success        bool        `json:"success"`
	Error          string      `json:"error,omitempty"`
	Message        string      `json:"message"`
	ActionRequired string      `json:"action_required,omitempty"`
	Status         *GameStatus `json:"status,omitempty"`
}

// CreateResult is the create-game response
type CreateResult struct {
	ActionResult
	GameID string `json:"game_id"`
}

// StatusResult is the game status response
type StatusResult ActionResult

// TeamStatus response type
type TeamStatus struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Members       []string `json:"members"`
	RoundMoney    int      `json:"round_money"`
	TotalMoney    int      `json:"total_money"`
	HasFreeSpin   bool     `json:"has_free_spin"`
	IsCurrentTurn bool     `json:"is_current_turn"`
}

// PuzzleStatus response type
type PuzzleStatus struct {
	Category       string   `json:"category"`
	Display        string   `json:"display"`
	GuessedLetters []string `json:"guessed_letters"`
	Completed      bool     `json:"completed"`
	Solution       string   `json:"solution,omitempty"`
}

// WheelInfo response type
type WheelInfo struct {
	Kind   string `json:"kind"`
	Amount int    `json:"amount,omitempty"`
	Prize  string `json:"prize,omitempty"`
}

// GameStatus response type
type GameStatus struct {
	GameID       string        `json:"game_id"`
	GameState    string        `json:"game_state"`
	TurnState    string        `json:"turn_state"`
	CurrentRound int           `json:"current_round"`
	TotalRounds  int           `json:"total_rounds"`
	VowelCost    int           `json:"vowel_cost"`
	Teams        []TeamStatus  `json:"teams"`
	Puzzle       *PuzzleStatus `json:"current_puzzle,omitempty"`
	LastWheel    *WheelInfo    `json:"last_wheel_result,omitempty"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Position    int    `json:"position"`
	TeamName    string `json:"team_name"`
	TotalMoney  int    `json:"total_money"`
	RoundMoney  int    `json:"round_money"`
	HasFreeSpin bool   `json:"has_free_spin"`
}

// LeaderboardResult is the leaderboard response
type LeaderboardResult struct {
	ActionResult
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// GameListing is one game's line in the list response
type GameListing struct {
	GameID       string `json:"game_id"`
	GameState    string `json:"game_state"`
	Teams        int    `json:"teams"`
	CurrentRound int    `json:"current_round"`
	TotalRounds  int    `json:"total_rounds"`
}

// ListResult is the list-games response
type ListResult struct {
	Games []GameListing `json:"games"`
	Count int           `json:"count"`
}

// TeamSummary is one team's line in the summary response
type TeamSummary struct {
	Position   int    `json:"position"`
	TeamName   string `json:"team_name"`
	TotalMoney int    `json:"total_money"`
	RoundMoney int    `json:"round_money"`
	RoundsWon  int    `json:"rounds_won"`
}

// RoundWinner is one solved round in the summary response
type RoundWinner struct {
	RoundNumber int    `json:"round_number"`
	TeamName    string `json:"team_name"`
	Category    string `json:"category"`
	Solution    string `json:"solution"`
}

// SummaryResult is the game summary response
type SummaryResult struct {
	ActionResult
	TotalRounds     int           `json:"total_rounds"`
	CompletedRounds int           `json:"completed_rounds"`
	CurrentRound    int           `json:"current_round"`
	MoneyInPlay     int           `json:"money_in_play"`
	Teams           []TeamSummary `json:"teams"`
	RoundWinners    []RoundWinner `json:"round_winners"`
}

// PuzzlePoolResult is the puzzle pool response
type PuzzlePoolResult struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// WheelOptionsResult is the wheel options response
type WheelOptionsResult struct {
	Money   []WheelInfo `json:"money_options"`
	Special []WheelInfo `json:"special_options"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCreateResult(r CreateResult) {
	fmt.Printf("Game created: %s\n", r.GameID)
	o.printStatus(r.Status)
}

func (o *Output) printActionResult(r ActionResult) {
	if r.Message != "" {
		fmt.Println(r.Message)
	}
	o.printStatus(r.Status)
	if r.ActionRequired != "" {
		fmt.Printf("Next: %s\n", r.ActionRequired)
	}
}

func (o *Output) printStatus(s *GameStatus) {
	if s == nil {
		return
	}

	fmt.Printf("Game: %s (%s)\n", s.GameID, s.GameState)
	fmt.Printf("Round: %d of %d\n", s.CurrentRound, s.TotalRounds)

	if s.Puzzle != nil {
		fmt.Printf("Category: %s\n", s.Puzzle.Category)
		fmt.Printf("Puzzle:  %s\n", spaced(s.Puzzle.Display))
		if len(s.Puzzle.GuessedLetters) > 0 {
			fmt.Printf("Guessed: %s\n", strings.Join(s.Puzzle.GuessedLetters, " "))
		}
		if s.Puzzle.Solution != "" {
			fmt.Printf("Solution: %s\n", s.Puzzle.Solution)
		}
	}

	if s.LastWheel != nil {
		fmt.Printf("Last spin: %s\n", wheelLabel(*s.LastWheel))
	}

	fmt.Printf("Teams (%d):\n", len(s.Teams))
	for _, t := range s.Teams {
		marker := " "
		if t.IsCurrentTurn {
			marker = "*"
		}
		spin := ""
		if t.HasFreeSpin {
			spin = " [free spin]"
		}
		fmt.Printf("  %s %s: $%d this round, $%d total%s\n", marker, t.Name, t.RoundMoney, t.TotalMoney, spin)
	}
}

func (o *Output) printLeaderboardResult(r LeaderboardResult) {
	fmt.Println("Leaderboard:")
	for _, e := range r.Leaderboard {
		spin := ""
		if e.HasFreeSpin {
			spin = " [free spin]"
		}
		fmt.Printf("  %d. %s: $%d total ($%d this round)%s\n", e.Position, e.TeamName, e.TotalMoney, e.RoundMoney, spin)
	}
}

func (o *Output) printListResult(r ListResult) {
	if r.Count == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", r.Count)
	for _, g := range r.Games {
		fmt.Printf("  %s: %s, round %d of %d, %d teams\n",
			g.GameID, g.GameState, g.CurrentRound, g.TotalRounds, g.Teams)
	}
}

func (o *Output) printSummaryResult(r SummaryResult) {
	fmt.Printf("Rounds: %d of %d completed (current: %d)\n", r.CompletedRounds, r.TotalRounds, r.CurrentRound)
	fmt.Printf("Money in play: $%d\n", r.MoneyInPlay)
	fmt.Println("Teams:")
	for _, t := range r.Teams {
		fmt.Printf("  %d. %s: $%d total ($%d this round), %d round(s) won\n",
			t.Position, t.TeamName, t.TotalMoney, t.RoundMoney, t.RoundsWon)
	}
	if len(r.RoundWinners) > 0 {
		fmt.Println("Round winners:")
		for _, w := range r.RoundWinners {
			fmt.Printf("  Round %d: %s (%s: %s)\n", w.RoundNumber, w.TeamName, w.Category, w.Solution)
		}
	}
}

func (o *Output) printPuzzlePoolResult(r PuzzlePoolResult) {
	fmt.Printf("Puzzles loaded: %d\n", r.Count)
	if len(r.Categories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(r.Categories, ", "))
	}
}

func (o *Output) printWheelOptionsResult(r WheelOptionsResult) {
	fmt.Println("Money segments:")
	for _, w := range r.Money {
		fmt.Printf("  %s\n", wheelLabel(w))
	}
	fmt.Println("Special segments:")
	for _, w := range r.Special {
		fmt.Printf("  %s\n", wheelLabel(w))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func wheelLabel(w WheelInfo) string {
	switch w.Kind {
	case "MONEY":
		return fmt.Sprintf("$%d", w.Amount)
	case "PRIZE":
		return fmt.Sprintf("%s ($%d)", w.Prize, w.Amount)
	default:
		return w.Kind
	}
}

// spaced pads the puzzle display so hidden letters read as a board
func spaced(display string) string {
	var b strings.Builder
	for i, r := range display {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
