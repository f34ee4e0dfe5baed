package handler

import (
	"net/http"

	"github.com/wheelparty/fortunegame-go/internal/api/response"
	"github.com/wheelparty/fortunegame-go/internal/services/puzzle"
)

// PuzzleHandler serves puzzle pool reference data
type PuzzleHandler struct {
	puzzles *puzzle.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(svc *puzzle.Service) *PuzzleHandler {
	return &PuzzleHandler{puzzles: svc}
}

// PoolInfo describes the loaded puzzle pool. Solutions are never
// exposed here; only the category list and the pool size.
type PoolInfo struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// Pool handles GET /api/v1/puzzles
func (h *PuzzleHandler) Pool(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, PoolInfo{
		Count:      h.puzzles.Count(),
		Categories: h.puzzles.Categories(),
	})
}
