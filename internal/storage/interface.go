package storage

import (
	"context"

	"github.com/wheelparty/fortunegame-go/internal/model"
)

// Storage defines the interface for data persistence. Games are whole
// aggregates: save/load replaces the full game state.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGameIDs(ctx context.Context) ([]model.GameID, error)

	// Puzzle set operations
	GetPuzzleSet(ctx context.Context) ([]model.PuzzleEntry, error)
	SavePuzzleSet(ctx context.Context, entries []model.PuzzleEntry) error
}
