package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games   map[model.GameID]*model.Game
	puzzles []model.PuzzleEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGameIDs(ctx context.Context) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.GameID, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Puzzle set operations

func (s *Storage) GetPuzzleSet(ctx context.Context) ([]model.PuzzleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.puzzles == nil {
		return nil, model.ErrNoPuzzles
	}
	result := make([]model.PuzzleEntry, len(s.puzzles))
	copy(result, s.puzzles)
	return result, nil
}

func (s *Storage) SavePuzzleSet(ctx context.Context, entries []model.PuzzleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles = make([]model.PuzzleEntry, len(entries))
	copy(s.puzzles, entries)
	return nil
}
