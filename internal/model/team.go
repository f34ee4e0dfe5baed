package model

import "strings"

// TeamID uniquely identifies a team within a game
type TeamID string

// Team is a scoring unit: a named group of players sharing round money,
// banked total money and an optional free spin. Teams are created at
// game setup and never destroyed during the game.
type Team struct {
	ID          TeamID   `json:"id"`
	Name        string   `json:"name"`
	Members     []string `json:"members"`
	RoundMoney  int      `json:"round_money"`
	TotalMoney  int      `json:"total_money"`
	HasFreeSpin bool     `json:"has_free_spin"`
}

// NewTeam creates a team with the given identity
func NewTeam(id TeamID, name string, members []string) (*Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTeamName
	}
	if len(members) == 0 {
		return nil, ErrNoTeamMembers
	}
	return &Team{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Members: members,
	}, nil
}

// CreditConsonant adds amount x occurrences to the round money
func (t *Team) CreditConsonant(amount, occurrences int) {
	if amount < 0 || occurrences < 0 {
		return
	}
	t.RoundMoney += amount * occurrences
}

// CreditPrize adds a flat prize payout to the round money
func (t *Team) CreditPrize(amount int) {
	if amount < 0 {
		return
	}
	t.RoundMoney += amount
}

// CanAfford reports whether the team has at least cost in round money
func (t *Team) CanAfford(cost int) bool {
	return t.RoundMoney >= cost
}

// ChargeVowel deducts the vowel cost, flooring round money at zero
func (t *Team) ChargeVowel(cost int) {
	t.RoundMoney -= cost
	if t.RoundMoney < 0 {
		t.RoundMoney = 0
	}
}

// Bankrupt wipes the team's round money
func (t *Team) Bankrupt() {
	t.RoundMoney = 0
}

// SettleRound banks the round money into the total and resets it
func (t *Team) SettleRound() {
	t.TotalMoney += t.RoundMoney
	t.RoundMoney = 0
}
