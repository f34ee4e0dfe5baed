package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wheelparty/fortunegame-go/internal/dependencies/mocks"
	"github.com/wheelparty/fortunegame-go/internal/model"
	"github.com/wheelparty/fortunegame-go/internal/services/game"
	"github.com/wheelparty/fortunegame-go/internal/services/puzzle"
	"github.com/wheelparty/fortunegame-go/internal/services/scoring"
	"github.com/wheelparty/fortunegame-go/internal/storage/memory"
	"github.com/wheelparty/fortunegame-go/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	random        *mocks.MockRandom
	puzzleService *puzzle.Service
	engine        *Engine
	ctx           context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	store := memory.New()
	clock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.puzzleService = puzzle.New(store, s.random, testutil.NopLogger())
	scoringService := scoring.New()
	controller := game.NewController(store, s.puzzleService, scoringService, clock, s.random, testutil.NopLogger())
	s.engine = New(controller, scoringService, testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.puzzleService.LoadEntries([]model.PuzzleEntry{
		{Solution: "HELLO WORLD", Category: "PHRASE"},
	}))
}

func (s *EngineSuite) twoTeams() []game.TeamSpec {
	return []game.TeamSpec{
		{Name: "Reds", Members: []string{"alice"}},
		{Name: "Blues", Members: []string{"bob"}},
	}
}

// startedGame creates and starts a one-round game, returning its ID
func (s *EngineSuite) startedGame() model.GameID {
	s.random.QueueString("GAME12345678", "TEAM0001", "TEAM0002")

	created := s.engine.CreateGame(s.ctx, s.twoTeams(), 1)
	s.Require().True(created.Success)

	started := s.engine.StartGame(s.ctx, model.GameID(created.GameID))
	s.Require().True(started.Success)

	return model.GameID(created.GameID)
}

func (s *EngineSuite) TestCreateGameSuccess() {
	s.random.QueueString("GAME12345678", "TEAM0001", "TEAM0002")

	result := s.engine.CreateGame(s.ctx, s.twoTeams(), 2)

	s.True(result.Success)
	s.Empty(result.Error)
	s.Equal("GAME12345678", result.GameID)
	s.Require().NotNil(result.Status)
	s.Equal("SETUP", string(result.Status.State))
	s.Len(result.Status.Teams, 2)
	// No puzzle is exposed before the game starts
	s.Nil(result.Status.Puzzle)
}

func (s *EngineSuite) TestCreateGameFailureIsStructured() {
	result := s.engine.CreateGame(s.ctx, s.twoTeams()[:1], 1)

	s.False(result.Success)
	s.Equal(KindSetupError, result.Error)
	s.NotEmpty(result.Message)
	s.Empty(result.GameID)
	s.Nil(result.Status)
}

func (s *EngineSuite) TestStartGameRequestsSpin() {
	s.random.QueueString("GAME12345678", "TEAM0001", "TEAM0002")
	created := s.engine.CreateGame(s.ctx, s.twoTeams(), 1)

	result := s.engine.StartGame(s.ctx, model.GameID(created.GameID))

	s.True(result.Success)
	s.Equal("Reds", result.CurrentTeam)
	s.Equal(ActionSpin, result.ActionRequired)
	s.Require().NotNil(result.Status)
	s.Require().NotNil(result.Status.Puzzle)
	s.Equal("_____ _____", result.Status.Puzzle.Display)
	s.Empty(result.Status.Puzzle.Solution)
}

func (s *EngineSuite) TestSpinMoneyRequestsConsonant() {
	id := s.startedGame()

	result := s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500))

	s.True(result.Success)
	s.Equal(ActionGuessConsonant, result.ActionRequired)
	s.True(result.TurnContinues)
	s.Equal("Reds", result.Team)
	s.Contains(result.Message, "$500")
}

func (s *EngineSuite) TestSpinBankruptRequestsNextTeam() {
	id := s.startedGame()

	result := s.engine.ProcessWheelSpin(s.ctx, id, model.Bankrupt())

	s.True(result.Success)
	s.Equal(ActionSelectNextTeam, result.ActionRequired)
	s.False(result.TurnContinues)
}

func (s *EngineSuite) TestSpinFreeSpinRequestsSpinAgain() {
	id := s.startedGame()

	result := s.engine.ProcessWheelSpin(s.ctx, id, model.FreeSpin())

	s.True(result.Success)
	s.Equal(ActionSpinAgain, result.ActionRequired)
	s.True(result.FreeSpinEarned)
}

func (s *EngineSuite) TestSpinPrizeCreditsPayout() {
	id := s.startedGame()

	result := s.engine.ProcessWheelSpin(s.ctx, id, model.Prize("DANCE", 1001))

	s.True(result.Success)
	s.Equal(1001, result.PrizeAwarded)
	s.Equal(ActionSelectNextTeam, result.ActionRequired)
}

func (s *EngineSuite) TestSpinUnknownGame() {
	result := s.engine.ProcessWheelSpin(s.ctx, "missing", model.Money(500))

	s.False(result.Success)
	s.Equal(KindGameNotFound, result.Error)
}

func (s *EngineSuite) TestSpinIllegalStateIsStructured() {
	id := s.startedGame()

	first := s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500))
	s.Require().True(first.Success)

	second := s.engine.ProcessWheelSpin(s.ctx, id, model.Money(300))
	s.False(second.Success)
	s.Equal(KindIllegalAction, second.Error)
}

func (s *EngineSuite) TestGuessRejectsMultiCharacterInput() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)

	result := s.engine.ProcessLetterGuess(s.ctx, id, "LL")

	s.False(result.Success)
	s.Equal(KindInvalidLetter, result.Error)
}

func (s *EngineSuite) TestGuessCorrectOffersVowelOrSolve() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)

	result := s.engine.ProcessLetterGuess(s.ctx, id, "l")

	s.True(result.Success)
	s.Equal("L", result.Letter)
	s.True(result.InPuzzle)
	s.Equal(3, result.Occurrences)
	s.Equal(1500, result.MoneyEarned)
	s.Equal(ActionChooseVowelOrSolve, result.ActionRequired)
	s.Equal("__LL_ ___L_", result.Status.Puzzle.Display)
}

func (s *EngineSuite) TestGuessMissRequestsNextTeam() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)

	result := s.engine.ProcessLetterGuess(s.ctx, id, "Z")

	s.True(result.Success)
	s.False(result.InPuzzle)
	s.Equal(ActionSelectNextTeam, result.ActionRequired)
}

func (s *EngineSuite) TestVowelWithoutFundsIsStructured() {
	id := s.startedGame()

	result := s.engine.ProcessVowelPurchase(s.ctx, id, "O")

	s.False(result.Success)
	s.Equal(KindInsufficientFunds, result.Error)
}

func (s *EngineSuite) TestSolveWrongHidesSolution() {
	id := s.startedGame()

	result := s.engine.ProcessSolveAttempt(s.ctx, id, "GOODBYE WORLD")

	s.True(result.Success)
	s.False(result.Correct)
	s.Empty(result.Solution)
	s.Equal(ActionSelectNextTeam, result.ActionRequired)
	s.Empty(result.Status.Puzzle.Solution)
}

func (s *EngineSuite) TestSolveCorrectRevealsSolution() {
	id := s.startedGame()

	result := s.engine.ProcessSolveAttempt(s.ctx, id, "hello world")

	s.True(result.Success)
	s.True(result.Correct)
	s.Equal("HELLO WORLD", result.Solution)
	s.Equal(ActionAdvanceRound, result.ActionRequired)
	s.Require().NotNil(result.Status.Puzzle)
	s.True(result.Status.Puzzle.Completed)
	s.Equal("HELLO WORLD", result.Status.Puzzle.Solution)
}

func (s *EngineSuite) TestAdvanceTeamIllegalMidTurn() {
	id := s.startedGame()

	result := s.engine.AdvanceTeam(s.ctx, id)

	s.False(result.Success)
	s.Equal(KindIllegalAction, result.Error)
}

func (s *EngineSuite) TestAdvanceTeamAfterTurnEnds() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Bankrupt()).Success)

	result := s.engine.AdvanceTeam(s.ctx, id)

	s.True(result.Success)
	s.Equal("Blues", result.Team)
	s.False(result.UsedFreeSpin)
	s.Equal(ActionSpin, result.ActionRequired)
}

func (s *EngineSuite) TestAdvanceRoundCompletesGame() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessSolveAttempt(s.ctx, id, "HELLO WORLD").Success)

	result := s.engine.AdvanceRound(s.ctx, id)

	s.True(result.Success)
	s.True(result.GameComplete)
	s.Equal(ActionNone, result.ActionRequired)
	s.Require().Len(result.Winners, 2)
	s.Equal("GAME_COMPLETED", string(result.Status.State))
}

func (s *EngineSuite) TestEndRoundRevealsPuzzle() {
	id := s.startedGame()

	result := s.engine.EndRound(s.ctx, id)

	s.True(result.Success)
	s.Equal("HELLO WORLD", result.Solution)
	s.Equal(ActionAdvanceRound, result.ActionRequired)
}

func (s *EngineSuite) TestGameStatusDerivesNextAction() {
	id := s.startedGame()

	status := s.engine.GameStatus(s.ctx, id)
	s.True(status.Success)
	s.Equal(ActionSpin, status.ActionRequired)

	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)

	status = s.engine.GameStatus(s.ctx, id)
	s.Equal(ActionGuessConsonant, status.ActionRequired)
}

func (s *EngineSuite) TestLeaderboard() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)
	s.Require().True(s.engine.ProcessLetterGuess(s.ctx, id, "L").Success)
	s.Require().True(s.engine.ProcessSolveAttempt(s.ctx, id, "HELLO WORLD").Success)

	result := s.engine.Leaderboard(s.ctx, id)

	s.True(result.Success)
	s.Require().Len(result.Leaderboard, 2)
	s.Equal("Reds", result.Leaderboard[0].TeamName)
	s.Equal(1500, result.Leaderboard[0].TotalMoney)
	s.Equal(2, result.Leaderboard[1].Position)
}

func (s *EngineSuite) TestGameSummaryAggregatesCompletedRounds() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)
	s.Require().True(s.engine.ProcessLetterGuess(s.ctx, id, "L").Success)
	s.Require().True(s.engine.ProcessSolveAttempt(s.ctx, id, "HELLO WORLD").Success)

	result := s.engine.GameSummary(s.ctx, id)

	s.True(result.Success)
	s.Equal(1, result.TotalRounds)
	s.Equal(1, result.CompletedRounds)
	s.Equal(1500, result.MoneyInPlay)
	s.Equal(1500, result.HighestTotal)
	s.Require().Len(result.Teams, 2)
	s.Equal("Reds", result.Teams[0].TeamName)
	s.Equal(1500, result.Teams[0].TotalMoney)
	s.Equal(1, result.Teams[0].RoundsWon)
	s.Equal(0, result.Teams[1].RoundsWon)
	s.Require().Len(result.RoundWinners, 1)
	s.Equal(1, result.RoundWinners[0].RoundNumber)
	s.Equal("Reds", result.RoundWinners[0].TeamName)
	s.Equal("PHRASE", result.RoundWinners[0].Category)
	s.Equal("HELLO WORLD", result.RoundWinners[0].Solution)
}

func (s *EngineSuite) TestGameSummaryMidRoundStandings() {
	id := s.startedGame()
	s.Require().True(s.engine.ProcessWheelSpin(s.ctx, id, model.Money(500)).Success)
	s.Require().True(s.engine.ProcessLetterGuess(s.ctx, id, "L").Success)

	result := s.engine.GameSummary(s.ctx, id)

	s.True(result.Success)
	s.Equal(0, result.CompletedRounds)
	s.Equal(1500, result.HighestRound)
	s.Require().Len(result.RoundStandings, 2)
	s.Equal("Reds", result.RoundStandings[0].TeamName)
	s.Equal(1500, result.RoundStandings[0].RoundMoney)
	s.Empty(result.RoundWinners)
}

func (s *EngineSuite) TestGameSummaryUnknownGame() {
	result := s.engine.GameSummary(s.ctx, "missing")

	s.False(result.Success)
	s.Equal(KindGameNotFound, result.Error)
}

func (s *EngineSuite) TestListGamesOrderedByID() {
	s.random.QueueString("GAMEAAAA0001", "TEAM0001", "TEAM0002")
	s.Require().True(s.engine.CreateGame(s.ctx, s.twoTeams(), 1).Success)
	s.random.QueueString("GAMEBBBB0002", "TEAM0003", "TEAM0004")
	s.Require().True(s.engine.CreateGame(s.ctx, s.twoTeams(), 2).Success)

	result := s.engine.ListGames(s.ctx)

	s.True(result.Success)
	s.Equal(2, result.Count)
	s.Require().Len(result.Games, 2)
	s.Equal("GAMEAAAA0001", result.Games[0].GameID)
	s.Equal("GAMEBBBB0002", result.Games[1].GameID)
	s.Equal(model.GameStateSetup, result.Games[0].State)
	s.Equal(2, result.Games[0].Teams)
	s.Equal(2, result.Games[1].TotalRounds)
}

func (s *EngineSuite) TestListGamesEmpty() {
	result := s.engine.ListGames(s.ctx)

	s.True(result.Success)
	s.Equal(0, result.Count)
	s.Empty(result.Games)
}

func (s *EngineSuite) TestWheelOptionsSplitSegments() {
	result := s.engine.WheelOptions()

	s.True(result.Success)
	s.Len(result.Money, 6)
	s.Len(result.Special, 6)
}

func (s *EngineSuite) TestDeleteGame() {
	id := s.startedGame()

	result := s.engine.DeleteGame(s.ctx, id)
	s.True(result.Success)

	status := s.engine.GameStatus(s.ctx, id)
	s.False(status.Success)
	s.Equal(KindGameNotFound, status.Error)
}
