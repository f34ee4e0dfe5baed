package model

import (
	"sort"
	"strings"
	"unicode"
)

const (
	vowels     = "AEIOU"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
)

// PuzzleEntry is a raw puzzle as held by the puzzle provider
type PuzzleEntry struct {
	Solution string `json:"solution"`
	Category string `json:"category"`
}

// GuessReport describes the effect of a single letter guess
type GuessReport struct {
	Correct     bool
	Occurrences int
}

// Puzzle is the word puzzle under play in a round. The solution is fixed
// at creation; only guess application mutates the letter sets.
//
// Guessed holds correct reveals and drives display/completion. Missed
// holds incorrect attempts so a spent letter cannot be guessed again;
// it never affects the display.
type Puzzle struct {
	Solution string          `json:"solution"`
	Category string          `json:"category"`
	Guessed  map[string]bool `json:"guessed"`
	Missed   map[string]bool `json:"missed"`
}

// NewPuzzle creates a puzzle, normalizing solution and category to
// trimmed uppercase
func NewPuzzle(solution, category string) (*Puzzle, error) {
	solution = strings.ToUpper(strings.TrimSpace(solution))
	category = strings.ToUpper(strings.TrimSpace(category))
	if solution == "" {
		return nil, ErrEmptySolution
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	return &Puzzle{
		Solution: solution,
		Category: category,
		Guessed:  make(map[string]bool),
		Missed:   make(map[string]bool),
	}, nil
}

// IsVowel reports whether r is one of AEIOU (case-insensitive)
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowels, unicode.ToUpper(r))
}

// IsConsonant reports whether r is an alphabetic non-vowel
func IsConsonant(r rune) bool {
	return unicode.IsLetter(r) && !IsVowel(r)
}

// ValidateLetter checks that r is a single character A-Z after
// normalization
func ValidateLetter(r rune) error {
	u := unicode.ToUpper(r)
	if u < 'A' || u > 'Z' {
		return ErrInvalidLetter
	}
	return nil
}

// ApplyGuess records a guess of the given letter and reports whether it
// appears in the solution and how many times. A letter that was already
// guessed (correctly or not) is rejected without mutation.
func (p *Puzzle) ApplyGuess(r rune) (GuessReport, error) {
	if err := ValidateLetter(r); err != nil {
		return GuessReport{}, err
	}
	letter := string(unicode.ToUpper(r))
	if p.Guessed[letter] || p.Missed[letter] {
		return GuessReport{}, ErrLetterAlreadyGuessed
	}

	occurrences := strings.Count(p.Solution, letter)
	if occurrences > 0 {
		p.Guessed[letter] = true
		return GuessReport{Correct: true, Occurrences: occurrences}, nil
	}
	p.Missed[letter] = true
	return GuessReport{Correct: false}, nil
}

// CountOccurrences counts how many times the letter appears in the
// solution
func (p *Puzzle) CountOccurrences(r rune) int {
	return strings.Count(p.Solution, string(unicode.ToUpper(r)))
}

// IsComplete reports whether every alphabetic character of the solution
// has been revealed
func (p *Puzzle) IsComplete() bool {
	for _, r := range p.Solution {
		if unicode.IsLetter(r) && !p.Guessed[string(r)] {
			return false
		}
	}
	return true
}

// Display renders the solution with unrevealed letters masked as
// underscores; spaces, digits and punctuation stay visible
func (p *Puzzle) Display() string {
	var b strings.Builder
	for _, r := range p.Solution {
		if unicode.IsLetter(r) && !p.Guessed[string(r)] {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RevealAll marks every letter of the solution as guessed, used when a
// round is solved or force-ended
func (p *Puzzle) RevealAll() {
	for _, r := range p.Solution {
		if unicode.IsLetter(r) {
			p.Guessed[string(r)] = true
		}
	}
}

// AttemptSolve reports whether guess matches the full solution,
// ignoring case and surrounding whitespace
func (p *Puzzle) AttemptSolve(guess string) bool {
	return strings.ToUpper(strings.TrimSpace(guess)) == p.Solution
}

// GuessedLetters returns the correctly guessed letters in sorted order
func (p *Puzzle) GuessedLetters() []string {
	return sortedKeys(p.Guessed)
}

// AvailableConsonants returns the consonants not yet guessed, sorted
func (p *Puzzle) AvailableConsonants() []string {
	return p.availableFrom(consonants)
}

// AvailableVowels returns the vowels not yet guessed, sorted
func (p *Puzzle) AvailableVowels() []string {
	return p.availableFrom(vowels)
}

// RemainingLetters returns the number of distinct solution letters still
// hidden
func (p *Puzzle) RemainingLetters() int {
	remaining := make(map[string]bool)
	for _, r := range p.Solution {
		letter := string(r)
		if unicode.IsLetter(r) && !p.Guessed[letter] {
			remaining[letter] = true
		}
	}
	return len(remaining)
}

func (p *Puzzle) availableFrom(pool string) []string {
	var out []string
	for _, r := range pool {
		letter := string(r)
		if !p.Guessed[letter] && !p.Missed[letter] {
			out = append(out, letter)
		}
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
