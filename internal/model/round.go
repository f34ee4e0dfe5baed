package model

// Round binds one puzzle to a sequence of team turns. A round completes
// when its puzzle is solved or the round is force-closed; the winning
// team is empty for a forced close.
type Round struct {
	Number        int     `json:"number"`
	Puzzle        *Puzzle `json:"puzzle"`
	Completed     bool    `json:"completed"`
	WinningTeamID TeamID  `json:"winning_team_id,omitempty"`
}

// NewRound creates a round around the given puzzle. Round numbers are
// 1-based.
func NewRound(number int, puzzle *Puzzle) *Round {
	return &Round{
		Number: number,
		Puzzle: puzzle,
	}
}

// Complete marks the round finished and reveals the full puzzle. winner
// may be empty when the round is force-closed without a solver.
func (r *Round) Complete(winner TeamID) {
	r.Completed = true
	r.WinningTeamID = winner
	r.Puzzle.RevealAll()
}
