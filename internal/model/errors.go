package model

import "errors"

// Common errors used across the application
var (
	// Setup errors (fatal to the creation call only)
	ErrInvalidTeamCount  = errors.New("game must have between 2 and 6 teams")
	ErrInvalidRoundCount = errors.New("round count is out of range")
	ErrEmptyTeamName     = errors.New("team name cannot be empty")
	ErrNoTeamMembers     = errors.New("team must have at least one member")
	ErrEmptySolution     = errors.New("puzzle solution cannot be empty")
	ErrEmptyCategory     = errors.New("puzzle category cannot be empty")

	// Game lifecycle errors
	ErrGameNotFound       = errors.New("game not found")
	ErrGameNotStarted     = errors.New("game has not started")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameComplete       = errors.New("game is complete")
	ErrRoundNotCompleted  = errors.New("current round is not completed")

	// Turn errors
	ErrIllegalAction = errors.New("action is not legal in the current turn state")
	ErrNoWheelResult = errors.New("no money wheel result is pending")

	// Letter errors
	ErrInvalidLetter        = errors.New("letter must be a single character A-Z")
	ErrLetterAlreadyGuessed = errors.New("letter has already been guessed")
	ErrNotAConsonant        = errors.New("letter is not a consonant")
	ErrNotAVowel            = errors.New("letter is not a vowel")

	// Money errors
	ErrInsufficientFunds = errors.New("not enough round money to buy a vowel")

	// Wheel input errors
	ErrInvalidWheelResult = errors.New("invalid wheel result")

	// Puzzle provider errors
	ErrNoPuzzles = errors.New("no puzzles loaded")
)
