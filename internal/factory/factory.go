package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/wheelparty/fortunegame-go/internal/dependencies/clock"
	"github.com/wheelparty/fortunegame-go/internal/dependencies/random"
	"github.com/wheelparty/fortunegame-go/internal/services/engine"
	"github.com/wheelparty/fortunegame-go/internal/services/game"
	"github.com/wheelparty/fortunegame-go/internal/services/puzzle"
	"github.com/wheelparty/fortunegame-go/internal/services/scoring"
	"github.com/wheelparty/fortunegame-go/internal/storage"
	"github.com/wheelparty/fortunegame-go/internal/storage/memory"
	redisstorage "github.com/wheelparty/fortunegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PuzzleService  *puzzle.Service
	ScoringService *scoring.Service
	GameController *game.Controller
	Engine         *engine.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// PuzzlePath is the path to the puzzle file (optional)
	// If empty, puzzles must be loaded manually
	PuzzlePath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, logger)

	if cfg.PuzzlePath != "" {
		if err := app.PuzzleService.LoadFromFile(context.Background(), cfg.PuzzlePath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	puzzleService := puzzle.New(store, rnd, logger)
	scoringService := scoring.New()
	gameController := game.NewController(store, puzzleService, scoringService, clk, rnd, logger)
	gameEngine := engine.New(gameController, scoringService, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		PuzzleService:  puzzleService,
		ScoringService: scoringService,
		GameController: gameController,
		Engine:         gameEngine,
	}
}
