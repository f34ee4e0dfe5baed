package scoring

import (
	"sort"

	"github.com/wheelparty/fortunegame-go/internal/model"
)

// Service provides money bookkeeping and standings over a game
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Entry is one team's line on a leaderboard or standings table
type Entry struct {
	Position    int
	TeamID      model.TeamID
	TeamName    string
	Members     []string
	TotalMoney  int
	RoundMoney  int
	HasFreeSpin bool
}

// RoundWinner records which team solved a completed round
type RoundWinner struct {
	RoundNumber int
	TeamID      model.TeamID
	TeamName    string
	Category    string
	Solution    string
}

// Summary aggregates money statistics across the whole game
type Summary struct {
	TotalTeams      int
	TotalRounds     int
	CompletedRounds int
	CurrentRound    int
	MoneyInPlay     int
	HighestTotal    int
	HighestRound    int
	RoundWinners    []RoundWinner
}

// MoneyEarned computes the payout for a correct consonant guess
func (s *Service) MoneyEarned(occurrences, wheelValue int) int {
	return occurrences * wheelValue
}

// SettleRound banks every team's round money into its total. Settlement
// applies to all teams, not only the round winner.
func (s *Service) SettleRound(g *model.Game) {
	for _, t := range g.Teams {
		t.SettleRound()
	}
}

// Leaderboard returns teams ordered by banked total money, highest first
func (s *Service) Leaderboard(g *model.Game) []Entry {
	return s.standings(g, func(t *model.Team) int { return t.TotalMoney })
}

// RoundStandings returns teams ordered by current round money, highest first
func (s *Service) RoundStandings(g *model.Game) []Entry {
	return s.standings(g, func(t *model.Team) int { return t.RoundMoney })
}

// Winners returns every team holding the maximum total money. Ties are
// all reported.
func (s *Service) Winners(g *model.Game) []*model.Team {
	if len(g.Teams) == 0 {
		return nil
	}
	max := g.Teams[0].TotalMoney
	for _, t := range g.Teams[1:] {
		if t.TotalMoney > max {
			max = t.TotalMoney
		}
	}
	var winners []*model.Team
	for _, t := range g.Teams {
		if t.TotalMoney == max {
			winners = append(winners, t)
		}
	}
	return winners
}

// RoundsWon counts completed rounds solved by the given team
func (s *Service) RoundsWon(g *model.Game, id model.TeamID) int {
	won := 0
	for _, r := range g.Rounds {
		if r.Completed && r.WinningTeamID == id {
			won++
		}
	}
	return won
}

// GameSummary builds the money overview for a game
func (s *Service) GameSummary(g *model.Game) Summary {
	summary := Summary{
		TotalTeams:   len(g.Teams),
		TotalRounds:  g.TotalRounds,
		CurrentRound: g.CurrentRoundIndex + 1,
	}

	for _, t := range g.Teams {
		summary.MoneyInPlay += t.TotalMoney + t.RoundMoney
		if t.TotalMoney > summary.HighestTotal {
			summary.HighestTotal = t.TotalMoney
		}
		if t.RoundMoney > summary.HighestRound {
			summary.HighestRound = t.RoundMoney
		}
	}

	for _, r := range g.Rounds {
		if !r.Completed {
			continue
		}
		summary.CompletedRounds++
		if r.WinningTeamID == "" {
			continue
		}
		winner := g.TeamByID(r.WinningTeamID)
		if winner == nil {
			continue
		}
		summary.RoundWinners = append(summary.RoundWinners, RoundWinner{
			RoundNumber: r.Number,
			TeamID:      winner.ID,
			TeamName:    winner.Name,
			Category:    r.Puzzle.Category,
			Solution:    r.Puzzle.Solution,
		})
	}

	return summary
}

func (s *Service) standings(g *model.Game, money func(*model.Team) int) []Entry {
	teams := make([]*model.Team, len(g.Teams))
	copy(teams, g.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		return money(teams[i]) > money(teams[j])
	})

	entries := make([]Entry, len(teams))
	for i, t := range teams {
		entries[i] = Entry{
			Position:    i + 1,
			TeamID:      t.ID,
			TeamName:    t.Name,
			Members:     t.Members,
			TotalMoney:  t.TotalMoney,
			RoundMoney:  t.RoundMoney,
			HasFreeSpin: t.HasFreeSpin,
		}
	}
	return entries
}
