package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-selfplay/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-selfplay/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-selfplay/transport/console"
)

var errRedisDown = errors.New("redis down")

const finalBoard = " O | O | O\n---|---|---\n X | X |  \n---|---|---\n   |   |  \n\nGAME OVER - O WINS\n"

// scriptedChooser plays the given cells in order and an off-board cell after that.
type scriptedChooser struct {
	cells []int
	next  int
}

func newScriptedChooser(cells ...int) *scriptedChooser {
	return &scriptedChooser{cells: cells}
}

func (that *scriptedChooser) Choose([]int) int {
	if that.next >= len(that.cells) {
		return -1
	}

	cell := that.cells[that.next]
	that.next++

	return cell
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func oWinsAfterFiveMoves(game *entity.Game) bool {
	return game.Result() == entity.ResultOWins && game.Moves == 5 && game.ID != ""
}

func TestMatch_Play(t *testing.T) {
	t.Run("Plays the scripted game and saves the result", func(t *testing.T) {
		// Given: a scripted game where O wins the top row, and a result store
		var out bytes.Buffer
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		mockResultRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(oWinsAfterFiveMoves)).
			Return(nil).
			Once()
		mockResultRepo.EXPECT().
			ListRecent(mock.Anything, int64(recentGames)).
			Return([]string{"latest", "older"}, nil).
			Once()

		match := NewMatch(discardLogger(), console.New(&out), newScriptedChooser(0, 3, 1, 4, 2), time.Millisecond, mockResultRepo)

		// When: the match is played with O starting
		game, err := match.Play(context.Background(), entity.PlayerO)

		// Then: O wins after its third move
		require.NoError(t, err)
		assert.Equal(t, entity.ResultOWins, game.Result())
		assert.Equal(t, 5, game.Moves)

		// Then: six boards were printed, the last one right before the result line
		assert.Equal(t, 12, strings.Count(out.String(), "---|---|---\n"))
		assert.True(t, strings.HasSuffix(out.String(), finalBoard), out.String())
	})

	t.Run("Works without a result store", func(t *testing.T) {
		// Given: no result store
		match := NewMatch(discardLogger(), console.New(io.Discard), newScriptedChooser(0, 3, 1, 4, 2), time.Millisecond, nil)

		// When: the match is played
		game, err := match.Play(context.Background(), entity.PlayerO)

		// Then: the game still finishes
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
	})

	t.Run("Returns the game when the result cannot be saved", func(t *testing.T) {
		// Given: a result store that is down
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		mockResultRepo.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errRedisDown).
			Once()

		match := NewMatch(discardLogger(), console.New(io.Discard), newScriptedChooser(0, 3, 1, 4, 2), time.Millisecond, mockResultRepo)

		// When: the match is played
		game, err := match.Play(context.Background(), entity.PlayerO)

		// Then: the error is reported along with the finished game
		require.ErrorIs(t, err, errRedisDown)
		require.NotNil(t, game)
		assert.True(t, game.IsFinished())
	})

	t.Run("Keeps the saved result when listing recent games fails", func(t *testing.T) {
		// Given: a store that saves but cannot list
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		mockResultRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(oWinsAfterFiveMoves)).
			Return(nil).
			Once()
		mockResultRepo.EXPECT().
			ListRecent(mock.Anything, int64(recentGames)).
			Return(nil, errRedisDown).
			Once()

		match := NewMatch(discardLogger(), console.New(io.Discard), newScriptedChooser(0, 3, 1, 4, 2), time.Millisecond, mockResultRepo)

		// When: the match is played
		game, err := match.Play(context.Background(), entity.PlayerO)

		// Then: the game is reported as finished without an error
		require.NoError(t, err)
		assert.Equal(t, entity.ResultOWins, game.Result())
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a canceled context and a slow poll
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		match := NewMatch(discardLogger(), console.New(io.Discard), newScriptedChooser(4, 0), time.Hour, mockResultRepo)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the match is played
		game, err := match.Play(ctx, entity.PlayerX)

		// Then: it gives up without saving anything
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, game)
	})
}
