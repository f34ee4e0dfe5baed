package factory

import (
	"time"

	"github.com/wheelparty/fortunegame-go/internal/dependencies/mocks"
	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/storage/memory"
	"github.com/wheelparty/fortunegame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestPuzzles loads a small fixed puzzle set for testing
func (t *TestApp) LoadTestPuzzles() error {
	entries := []model.PuzzleEntry{
		{Solution: "HELLO WORLD", Category: "Phrase"},
		{Solution: "GOLDEN RETRIEVER", Category: "Animal"},
		{Solution: "NEW YORK CITY", Category: "Place"},
		{Solution: "PIECE OF CAKE", Category: "Phrase"},
		{Solution: "ROCK AND ROLL", Category: "Music"},
	}
	return t.PuzzleService.LoadEntries(entries)
}
