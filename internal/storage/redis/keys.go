package redis

import (
	"fmt"

	"github.com/wheelparty/fortunegame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wofgame"

// gameKey returns the Redis key for a Game aggregate
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gameIndexKey returns the Redis key of the set holding all game IDs
func gameIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// puzzleSetKey returns the Redis key for the puzzle set
func puzzleSetKey() string {
	return fmt.Sprintf("%s:puzzles", keyPrefix)
}
