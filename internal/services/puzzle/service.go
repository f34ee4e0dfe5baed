package puzzle

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/wheelparty/fortunegame-go/internal/dependencies/random"
	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/storage"
)

// Service is the puzzle provider: a read-only pool of puzzle entries
// shared safely across games. Loading replaces the pool; selection never
// mutates it.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu      sync.RWMutex
	entries []model.PuzzleEntry
}

// New creates a new puzzle Service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// LoadFromFile loads a JSON array of {solution, category} entries and
// writes it through to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []model.PuzzleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	normalized, err := normalize(entries)
	if err != nil {
		return err
	}

	if err := s.storage.SavePuzzleSet(ctx, normalized); err != nil {
		return err
	}

	s.setEntries(normalized)
	s.logger.Info("puzzle set loaded",
		slog.String("path", path),
		slog.Int("count", len(normalized)),
	)
	return nil
}

// LoadFromStorage loads the puzzle set previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	entries, err := s.storage.GetPuzzleSet(ctx)
	if err != nil {
		return err
	}
	normalized, err := normalize(entries)
	if err != nil {
		return err
	}
	s.setEntries(normalized)
	return nil
}

// LoadEntries directly loads a slice of entries (useful for testing)
func (s *Service) LoadEntries(entries []model.PuzzleEntry) error {
	normalized, err := normalize(entries)
	if err != nil {
		return err
	}
	s.setEntries(normalized)
	return nil
}

// ListPuzzles returns a copy of the full puzzle pool
func (s *Service) ListPuzzles() []model.PuzzleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PuzzleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count returns the number of entries in the pool
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Categories returns the distinct categories in the pool, sorted
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, e := range s.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// NextPuzzle selects a random entry whose index is not in used and
// returns it with its index. When every entry has been used the pool
// cycles: selection restarts over the full set and repeats are allowed.
func (s *Service) NextPuzzle(used map[int]bool) (model.PuzzleEntry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return model.PuzzleEntry{}, 0, model.ErrNoPuzzles
	}

	var candidates []int
	for i := range s.entries {
		if !used[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		// Pool exhausted; cycle through the whole set again
		for i := range s.entries {
			candidates = append(candidates, i)
		}
	}

	idx := candidates[s.random.Intn(len(candidates))]
	return s.entries[idx], idx, nil
}

func (s *Service) setEntries(entries []model.PuzzleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// normalize uppercases and trims entries, rejecting empty fields
func normalize(entries []model.PuzzleEntry) ([]model.PuzzleEntry, error) {
	out := make([]model.PuzzleEntry, 0, len(entries))
	for _, e := range entries {
		solution := strings.ToUpper(strings.TrimSpace(e.Solution))
		category := strings.ToUpper(strings.TrimSpace(e.Category))
		if solution == "" {
			return nil, model.ErrEmptySolution
		}
		if category == "" {
			return nil, model.ErrEmptyCategory
		}
		out = append(out, model.PuzzleEntry{Solution: solution, Category: category})
	}
	return out, nil
}
